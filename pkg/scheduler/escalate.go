// Copyright 2025 BestBox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scheduler

import (
	"context"
	"log/slog"
)

// Page is one document page image handed to recognition.
type Page struct {
	DocID  string `json:"doc_id"`
	Number int    `json:"number"`
	Image  []byte `json:"image,omitempty"`
}

// VLRecognizer re-reads a page with the vision-language model. It runs on
// the contended GPU, so callers go through the escalator rather than
// invoking it directly.
type VLRecognizer interface {
	Recognize(ctx context.Context, page Page) ([]OCRBlock, error)
}

// Escalator applies the OCR quality gate. Classical OCR runs freely on its
// own device; pages that fail the gate are re-run as ocr-vl jobs under an
// exclusive lease, so document ingestion never starves interactive turns.
type Escalator struct {
	scheduler *Scheduler
	vl        VLRecognizer
}

func NewEscalator(s *Scheduler, vl VLRecognizer) *Escalator {
	return &Escalator{scheduler: s, vl: vl}
}

// Gate assesses one page's classical OCR output and escalates it when the
// gate fails. Passing blocks come back unchanged. When the VL pass also
// fails the gate, its blocks and verdict come back anyway; the page is as
// read as it will get.
func (e *Escalator) Gate(ctx context.Context, page Page, blocks []OCRBlock) ([]OCRBlock, OCRQuality, error) {
	quality := AssessOCR(blocks)
	if quality.OK || e.vl == nil {
		return blocks, quality, nil
	}

	slog.Info("Escalating page to vision-language OCR",
		"doc_id", page.DocID, "page", page.Number, "reason", quality.Reason)

	// Interactive turns acquire at priority 1; ingestion yields to them.
	lease, err := e.scheduler.Acquire(ctx, JobOCRVL, 0)
	if err != nil {
		return blocks, quality, err
	}
	defer lease.Release()

	redone, err := e.vl.Recognize(ctx, page)
	if err != nil {
		return blocks, quality, err
	}
	return redone, AssessOCR(redone), nil
}
