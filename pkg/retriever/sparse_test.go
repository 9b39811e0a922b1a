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

package retriever

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseEncodeDeterministic(t *testing.T) {
	i1, v1 := SparseEncode("模具 披锋 flash defect")
	i2, v2 := SparseEncode("模具 披锋 flash defect")

	assert.Equal(t, i1, i2)
	assert.Equal(t, v1, v2)
	assert.True(t, sortedAscending(i1))
}

func TestSparseEncodeCJKPerRune(t *testing.T) {
	// 披锋 splits into two single-rune terms; each hashes separately.
	indices, _ := SparseEncode("披锋")
	assert.Len(t, indices, 2)

	// Latin text tokenizes on word boundaries, case-folded.
	lower, _ := SparseEncode("flash defect")
	upper, _ := SparseEncode("FLASH Defect")
	assert.Equal(t, lower, upper)
}

func TestSparseEncodeTermFrequency(t *testing.T) {
	_, once := SparseEncode("flash")
	_, thrice := SparseEncode("flash flash flash")

	require.Len(t, once, 1)
	require.Len(t, thrice, 1)
	// Weight is 1+ln(tf), so repeats weigh more but sublinearly.
	assert.Greater(t, thrice[0], once[0])
	assert.Less(t, thrice[0], 3*once[0])
}

func TestSparseEncodeEmpty(t *testing.T) {
	indices, values := SparseEncode("   ... !!!")
	assert.Nil(t, indices)
	assert.Nil(t, values)
}

func TestLexiconExpandAndDomain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`terms:
  - term: 披锋
    domain: mold
    aliases: [飞边, flash]
  - term: 晒纹
    domain: finish
    aliases: [texture]
`), 0o600))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)

	expanded := lex.Expand("模具出现披锋怎么办")
	assert.Equal(t, "模具出现披锋怎么办 flash 飞边", expanded)

	// Unmatched queries pass through untouched.
	assert.Equal(t, "库存查询", lex.Expand("库存查询"))

	assert.Equal(t, "mold", lex.DomainOf("出现披锋"))
	assert.Equal(t, "finish", lex.DomainOf("这个 texture 不对"))
	assert.Equal(t, "", lex.DomainOf("采购订单"))
}

func TestLexiconEmptyPath(t *testing.T) {
	lex, err := LoadLexicon("")
	require.NoError(t, err)
	assert.Equal(t, "anything", lex.Expand("anything"))
	assert.Equal(t, "", lex.DomainOf("anything"))
}

func sortedAscending(xs []uint32) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			return false
		}
	}
	return true
}
