package factchecktools

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func roundTrip[T any](t *testing.T, in *T) *T {
	t.Helper()
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	out := new(T)
	require.NoError(t, json.Unmarshal(raw, out))
	return out
}

func TestClaimRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		date time.Time
	}{
		{"epoch", time.Unix(0, 0).UTC()},
		{"far future", time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)},
		{"nanos", time.Date(2024, 2, 29, 12, 0, 0, 123456789, time.UTC)},
		{"unset", time.Time{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := &GoogleFactcheckingFactchecktoolsV1alpha1Claim{
				ClaimDate: tc.date,
				Claimant:  "John Doe",
				ClaimReview: []*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReview{{
					ReviewDate: tc.date,
					Publisher:  &GoogleFactcheckingFactchecktoolsV1alpha1Publisher{Name: "Checks", Site: "checks.example"},
				}},
			}
			out := roundTrip(t, in)
			if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClaimDateWireForm(t *testing.T) {
	raw, err := json.Marshal(&GoogleFactcheckingFactchecktoolsV1alpha1Claim{ClaimDate: time.Unix(0, 0).UTC()})
	require.NoError(t, err)
	require.JSONEq(t, `{"claimDate":"1970-01-01T00:00:00Z"}`, string(raw))

	raw, err = json.Marshal(&GoogleFactcheckingFactchecktoolsV1alpha1Claim{Text: "x"})
	require.NoError(t, err)
	require.JSONEq(t, `{"text":"x"}`, string(raw))
}

func TestClaimRatingRoundTrip(t *testing.T) {
	for _, in := range []*GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating{
		{},
		{BestRating: 5, RatingValue: 3, WorstRating: 1},
		{BestRating: 0, RatingValue: -2, WorstRating: -5},
	} {
		out := roundTrip(t, in)
		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestClaimRatingForceSendZero(t *testing.T) {
	in := &GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating{
		RatingValue:     0,
		ForceSendFields: []string{"RatingValue"},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"ratingValue":0}`, string(raw))
}

func TestMarkupPageRoundTrip(t *testing.T) {
	in := &GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage{
		Name:              "pages/1",
		PageUrl:           "https://example.org/",
		PublishDate:       "2021-06-01",
		ClaimReviewAuthor: &GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewAuthor{Name: "Checks"},
		ClaimReviewMarkups: []*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkup{{
			ClaimAppearances: []string{"https://a.example", "https://b.example"},
			ClaimAuthor:      &GoogleFactcheckingFactchecktoolsV1alpha1ClaimAuthor{Name: "Jane", JobTitle: "Senator"},
			ClaimDate:        "2021-05-30",
			Rating:           &GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating{TextualRating: "Pants on fire"},
		}},
	}
	out := roundTrip(t, in)
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNullFields(t *testing.T) {
	in := &GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage{
		Name:       "pages/1",
		NullFields: []string{"ClaimReviewAuthor"},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"pages/1","claimReviewAuthor":null}`, string(raw))
}
