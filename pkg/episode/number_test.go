package episode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOne(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  Number
	}{
		{
			name:  "dash delimited with group and quality brackets",
			title: "[Group] Show Name - 12 [1080p]",
			want:  "12",
		},
		{
			name:  "single digit is padded",
			title: "[SubsPlease] Spy Family - 7 (1080p)",
			want:  "07",
		},
		{
			name:  "leading zeros normalized",
			title: "Show Name - 007",
			want:  "07",
		},
		{
			name:  "three digits survive unpadded",
			title: "Detective Story - 104",
			want:  "104",
		},
		{
			name:  "bracketed episode number",
			title: "【字幕组】[Sousou no Frieren][28][1080p][简日双语]",
			want:  "28",
		},
		{
			name:  "han episode marker",
			title: "葬送のフリーレン 第12話",
			want:  "12",
		},
		{
			name:  "season episode notation",
			title: "Show Name S02E05 [720p]",
			want:  "05",
		},
		{
			name:  "ep prefix",
			title: "86 EP23",
			want:  "23",
		},
		{
			name:  "version suffix ignored",
			title: "Show Name - 05v2 [WebRip]",
			want:  "05",
		},
		{
			name:  "fractional special",
			title: "Show Name - 22.5 [BD]",
			want:  "22.5",
		},
		{
			name:  "year in parentheses is not an episode",
			title: "Remake Show (2024) - 08",
			want:  "08",
		},
		{
			name:  "dash preferred over number in series name",
			title: "Mobile Suit Gundam 00 - 12",
			want:  "12",
		},
		{
			name:  "number inside hyphenated word ignored",
			title: "3-gatsu no Lion - 05",
			want:  "05",
		},
		{
			name:  "full-width digits folded",
			title: "ショー　－　０８",
			want:  "08",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractOne(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractOne_Unresolved(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "no number at all", title: "[Group] Show Name Movie [1080p]"},
		{name: "only quality tokens", title: "Show Name [1080p][x265][10bit]"},
		{name: "empty title", title: ""},
		{name: "only a year", title: "Show Name (2023) [BDRip]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractOne(tt.title)
			assert.ErrorIs(t, err, ErrUnresolved)
		})
	}
}

func TestExtractOne_Batch(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "bare range", title: "Show Name 01-02"},
		{name: "tilde range", title: "[Group] Show - 01~12 [BDRip]"},
		{name: "ep prefixed range", title: "[Group] Show EP01-03 [BDRip]"},
		{name: "season episode range", title: "[Group] Show S01E01-12 [BDRip]"},
		{name: "season episode range with second marker", title: "Show S01E01-E12 [BD]"},
		{name: "han marker range", title: "ショー 第1-12話"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractOne(tt.title)
			assert.ErrorIs(t, err, ErrAmbiguous)
		})
	}
}

func TestExtract_Batch(t *testing.T) {
	numbers, err := Extract("Show Name 01-03")
	require.NoError(t, err)
	assert.Equal(t, []Number{"01", "03"}, numbers)

	numbers, err = Extract("[Group] Show EP01-03 [BDRip]")
	require.NoError(t, err)
	assert.Equal(t, []Number{"01", "03"}, numbers)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		raw  string
		want Number
	}{
		{raw: "3", want: "03"},
		{raw: "003", want: "03"},
		{raw: "12", want: "12"},
		{raw: "104", want: "104"},
		{raw: "0", want: "00"},
		{raw: "22.5", want: "22.5"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.raw))
		})
	}
}

func TestNumberValue(t *testing.T) {
	v, err := Number("07").Value()
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	v, err = Number("104").Value()
	require.NoError(t, err)
	assert.Equal(t, 104.0, v)
}
