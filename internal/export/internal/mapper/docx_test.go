// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mapper

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDocxPlaceholders(t *testing.T) {
	values := ToDocxPlaceholders(testProfile())
	assert.Equal(t, "Jane  Doe", values["name"])
	assert.Equal(t, "jane@example.com | +1 555 0100 | Berlin | Website: https://jane.dev | GitHub: https://github.com/jane", values["contact"])
	assert.Equal(t, "Senior Engineer, Acme (Mar 2021 - Present): Cut latency by 40%; Led migration"+
		docxEntrySep+"Engineer, Initech (Jul 2018 - Feb 2021)", values["experience"])
	assert.Equal(t, "BSc Computer Science, TU Berlin (Oct 2014 - Jun 2018), GPA 3.8", values["education"])
	assert.Equal(t, "Languages: Go, Rust"+docxEntrySep+"Infra: Kafka"+docxEntrySep+"Other: Juggling", values["skills"])
	assert.Equal(t, "ego-lint (https://github.com/jane/ego-lint): Static checks (Used in CI; Zero config)"+
		docxEntrySep+"site (https://demo.jane.dev)", values["projects"])
}

func TestAssembleDOCX(t *testing.T) {
	testCases := []struct {
		name    string
		profile profile.Profile
		want    []string
	}{
		{
			name:    "完整数据",
			profile: testProfile(),
			want:    []string{"Jane  Doe", "Backend Engineer", "Initech", "Languages: Go, Rust"},
		},
		{
			name: "没有任何条目",
			profile: profile.Profile{
				PersonalInfo: profile.PersonalInfo{FullName: "Jane", Email: "jane@example.com"},
			},
			want: []string{"Jane", "Work Experience", "Projects"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			data, err := AssembleDOCX(ToDocxPlaceholders(tc.profile))
			require.NoError(t, err)
			body := documentXML(t, data)
			for _, w := range tc.want {
				assert.Contains(t, body, w)
			}
			for _, key := range []string{"{name}", "{title}", "{contact}", "{summary}",
				"{experience}", "{education}", "{skills}", "{projects}"} {
				assert.NotContains(t, body, key)
			}
		})
	}
}

func documentXML(t *testing.T, data []byte) string {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatal("缺少 word/document.xml")
	return ""
}
