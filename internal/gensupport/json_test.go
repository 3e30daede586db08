package gensupport

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type record struct {
	Count     int64             `json:"count,omitempty,string"`
	ID        uint64            `json:"id,omitempty,string"`
	Name      string            `json:"name,omitempty"`
	Enabled   bool              `json:"enabled,omitempty"`
	When      time.Time         `json:"when,omitzero"`
	Blob      []byte            `json:"blob,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
	Child     *record           `json:"child,omitempty"`
	Ratio     float64           `json:"ratio,omitempty"`
	Untouched string            `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (r record) MarshalJSON() ([]byte, error) {
	type noMethod record
	return MarshalJSON(noMethod(r), r.ForceSendFields, r.NullFields)
}

func marshalMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestMarshalJSONOmitsEmpty(t *testing.T) {
	got := marshalMap(t, record{Name: "x"})
	require.Equal(t, map[string]any{"name": "x"}, got)
}

func TestMarshalJSONForceSendFields(t *testing.T) {
	got := marshalMap(t, record{
		ForceSendFields: []string{"Count", "ID", "Enabled", "Tags", "Child"},
	})
	require.Equal(t, map[string]any{
		"count":   "0",
		"id":      "0",
		"enabled": false,
		"tags":    []any{},
	}, got)
}

func TestMarshalJSONStringFormat(t *testing.T) {
	got := marshalMap(t, record{
		Count:           -42,
		ID:              math.MaxUint64,
		ForceSendFields: []string{"Name"},
	})
	require.Equal(t, "-42", got["count"])
	require.Equal(t, "18446744073709551615", got["id"])
	require.Equal(t, "", got["name"])
}

func TestMarshalJSONNullFields(t *testing.T) {
	got := marshalMap(t, record{
		Labels:     map[string]string{"keep": "v"},
		NullFields: []string{"Name", "Labels.drop"},
	})
	require.Contains(t, got, "name")
	require.Nil(t, got["name"])
	require.Equal(t, map[string]any{"keep": "v", "drop": nil}, got["labels"])
}

func TestMarshalJSONNullFieldWithValue(t *testing.T) {
	_, err := json.Marshal(record{Name: "set", NullFields: []string{"Name"}})
	require.Error(t, err)
}

func TestMarshalJSONNestedAndTime(t *testing.T) {
	when := time.Date(2024, 2, 29, 12, 30, 0, 123456789, time.UTC)
	got := marshalMap(t, record{
		When:            when,
		Blob:            []byte{0, 1, 2},
		Child:           &record{Count: 7},
		ForceSendFields: []string{"Ratio"},
	})
	require.Equal(t, "2024-02-29T12:30:00.123456789Z", got["when"])
	require.Equal(t, "AAEC", got["blob"])
	require.Equal(t, map[string]any{"count": "7"}, got["child"])
	require.Equal(t, float64(0), got["ratio"])
}

func TestMarshalJSONEmptyBytesForced(t *testing.T) {
	got := marshalMap(t, record{ForceSendFields: []string{"Blob"}})
	require.Equal(t, "", got["blob"])
}

func TestMarshalJSONZeroTimeForced(t *testing.T) {
	got := marshalMap(t, record{ForceSendFields: []string{"When"}})
	require.Equal(t, "0001-01-01T00:00:00Z", got["when"])
}

func TestParseJSONTag(t *testing.T) {
	tests := []struct {
		in      string
		want    jsonTag
		wantErr bool
	}{
		{in: "-", want: jsonTag{ignore: true}},
		{in: "name", want: jsonTag{apiName: "name"}},
		{in: "name,omitempty", want: jsonTag{apiName: "name"}},
		{in: "id,omitempty,string", want: jsonTag{apiName: "id", stringFormat: true}},
		{in: "when,omitzero", want: jsonTag{apiName: "when"}},
		{in: ",omitempty", wantErr: true},
		{in: "name,bogus", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseJSONTag(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestJSONFloat64(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`1.5`, 1.5},
		{`-3`, -3},
		{`"Infinity"`, math.Inf(1)},
		{`"-Infinity"`, math.Inf(-1)},
		{`"2.25"`, 2.25},
	}
	for _, tt := range tests {
		var f JSONFloat64
		require.NoError(t, json.Unmarshal([]byte(tt.in), &f), tt.in)
		require.Equal(t, tt.want, float64(f), tt.in)
	}

	var nan JSONFloat64
	require.NoError(t, json.Unmarshal([]byte(`"NaN"`), &nan))
	require.True(t, math.IsNaN(float64(nan)))

	var bad JSONFloat64
	require.Error(t, json.Unmarshal([]byte(`"nope"`), &bad))
	require.Error(t, json.Unmarshal([]byte(`true`), &bad))
}

func TestJSONFloat64Marshal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.NaN(), `"NaN"`},
		{math.Inf(1), `"Infinity"`},
		{math.Inf(-1), `"-Infinity"`},
		{2.5, `2.5`},
	}
	for _, tt := range tests {
		raw, err := json.Marshal(JSONFloat64(tt.in))
		require.NoError(t, err)
		require.Equal(t, tt.want, string(raw))
	}
}

func TestMarshalJSONNonFiniteFloat(t *testing.T) {
	tests := []struct {
		name string
		rec  record
		want string
	}{
		{"nan", record{Ratio: math.NaN()}, "NaN"},
		{"inf", record{Ratio: math.Inf(1)}, "Infinity"},
		{"neg inf forced", record{Ratio: math.Inf(-1), ForceSendFields: []string{"Name"}}, "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := marshalMap(t, tt.rec)
			require.Equal(t, tt.want, got["ratio"])
		})
	}
}

func TestURLParams(t *testing.T) {
	u := make(URLParams)
	u.Set("b", "2")
	u.SetMulti("a", []string{"x", "y"})
	require.Equal(t, "x", u.Get("a"))
	require.Equal(t, "", u.Get("missing"))
	require.Equal(t, "a=x&a=y&b=2", u.Encode())
}
