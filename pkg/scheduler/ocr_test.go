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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessOCR(t *testing.T) {
	tests := []struct {
		name   string
		blocks []OCRBlock
		wantOK bool
	}{
		{
			name:   "no_blocks",
			blocks: nil,
			wantOK: false,
		},
		{
			name:   "all_empty",
			blocks: []OCRBlock{{Text: "  ", Confidence: 0.9}, {Text: "", Confidence: 0.9}},
			wantOK: false,
		},
		{
			name: "low_mean_confidence",
			blocks: []OCRBlock{
				{Text: "模具图纸 T-1022", Confidence: 0.4},
				{Text: "表面处理: 镀铬", Confidence: 0.3},
			},
			wantOK: false,
		},
		{
			name: "garbled_output",
			blocks: []OCRBlock{
				{Text: strings.Repeat(string(rune(0xFFFD)), 40) + "ok", Confidence: 0.95},
			},
			wantOK: false,
		},
		{
			name: "clean_chinese_drawing_text",
			blocks: []OCRBlock{
				{Text: "模具编号 T-1022 型腔数 4", Confidence: 0.93},
				{Text: "材质 NAK80 硬度 HRC40", Confidence: 0.88},
			},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := AssessOCR(tt.blocks)
			assert.Equal(t, tt.wantOK, q.OK)
			if !tt.wantOK {
				assert.NotEmpty(t, q.Reason)
			}
		})
	}
}
