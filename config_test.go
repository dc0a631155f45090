package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLConfigParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want [][2]string // name, value
	}{
		{desc: "empty"},
		{
			desc: "scalars",
			give: "mode: html\ndepth: 2\nabsent: false\n",
			want: [][2]string{
				{"absent", "false"},
				{"depth", "2"},
				{"mode", "html"},
			},
		},
		{
			desc: "list",
			give: "wrapper:\n  - allowFun\n  - lib.allowFun\n",
			want: [][2]string{
				{"wrapper", "allowFun"},
				{"wrapper", "lib.allowFun"},
			},
		},
		{
			desc: "null skipped",
			give: "title:\nmode: sections\n",
			want: [][2]string{
				{"mode", "sections"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var got [][2]string
			err := yamlConfigParser(strings.NewReader(tt.give), func(name, value string) error {
				got = append(got, [2]string{name, value})
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYAMLConfigParser_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		give    string
		wantErr string
	}{
		{
			desc:    "not a mapping",
			give:    "- foo\n- bar\n",
			wantErr: "parse config",
		},
		{
			desc:    "nested mapping",
			give:    "mode:\n  name: html\n",
			wantErr: `config "mode": expected a value or a list of values`,
		},
		{
			desc:    "nested list",
			give:    "wrapper: [[a, b]]\n",
			wantErr: `config "wrapper": expected a value or a list of values`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			err := yamlConfigParser(strings.NewReader(tt.give), func(string, string) error {
				return nil
			})
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestYAMLConfigParser_setError(t *testing.T) {
	t.Parallel()

	err := yamlConfigParser(strings.NewReader("mode: json\n"), func(string, string) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, `config "mode"`)
}
