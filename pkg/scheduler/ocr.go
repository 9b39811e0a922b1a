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
	"strings"
	"unicode"
)

// OCRBlock is one recognized text block from the OCR service.
type OCRBlock struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// OCRQuality is the gate verdict for an OCR pass.
type OCRQuality struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

const (
	minMeanConfidence = 0.5
	maxGarbledRatio   = 0.3
)

// AssessOCR decides whether an OCR result is usable or the document should
// be retried on the vision-language model. Fails on empty output, low mean
// confidence, or a high share of garbled (non-printable or replacement)
// characters.
func AssessOCR(blocks []OCRBlock) OCRQuality {
	if len(blocks) == 0 {
		return OCRQuality{OK: false, Reason: "no text blocks recognized"}
	}

	var text strings.Builder
	confidenceSum := 0.0
	for _, b := range blocks {
		text.WriteString(b.Text)
		confidenceSum += b.Confidence
	}

	joined := strings.TrimSpace(text.String())
	if joined == "" {
		return OCRQuality{OK: false, Reason: "all text blocks empty"}
	}

	if mean := confidenceSum / float64(len(blocks)); mean < minMeanConfidence {
		return OCRQuality{OK: false, Reason: "mean confidence below threshold"}
	}

	garbled := 0
	total := 0
	for _, r := range joined {
		total++
		if r == unicode.ReplacementChar || (!unicode.IsPrint(r) && !unicode.IsSpace(r)) {
			garbled++
		}
	}
	if total > 0 && float64(garbled)/float64(total) > maxGarbledRatio {
		return OCRQuality{OK: false, Reason: "output looks garbled"}
	}

	return OCRQuality{OK: true}
}
