package factchecktools

import (
	"time"

	"google.golang.org/api/googleapi"

	"gapi/internal/gensupport"
)

// GoogleFactcheckingFactchecktoolsV1alpha1Claim: Information about the
// claim.
type GoogleFactcheckingFactchecktoolsV1alpha1Claim struct {
	// ClaimDate: The date that the claim was made.
	ClaimDate time.Time `json:"claimDate,omitzero"`
	// ClaimReview: One or more reviews of this claim (namely, a fact-checking
	// article).
	ClaimReview []*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReview `json:"claimReview,omitempty"`
	// Claimant: A person or organization stating the claim. For instance,
	// "John Doe".
	Claimant string `json:"claimant,omitempty"`
	// Text: The claim text. For instance, "Crime has doubled in the last 2
	// years."
	Text string `json:"text,omitempty"`

	// ForceSendFields is a list of field names (e.g. "ClaimDate") to
	// unconditionally include in API requests. By default, fields with empty
	// or default values are omitted from API requests.
	ForceSendFields []string `json:"-"`
	// NullFields is a list of field names (e.g. "ClaimDate") to include in
	// API requests with the JSON null value. It is an error if a field in
	// this list has a non-empty value.
	NullFields []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1Claim) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1Claim
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1ClaimAuthor: Information about
// the claim author.
type GoogleFactcheckingFactchecktoolsV1alpha1ClaimAuthor struct {
	// ImageUrl: Corresponds to `ClaimReview.itemReviewed.author.image`.
	ImageUrl string `json:"imageUrl,omitempty"`
	// JobTitle: Corresponds to `ClaimReview.itemReviewed.author.jobTitle`.
	JobTitle string `json:"jobTitle,omitempty"`
	// Name: A person or organization stating the claim. For instance, "John
	// Doe". Corresponds to `ClaimReview.itemReviewed.author.name`.
	Name string `json:"name,omitempty"`
	// SameAs: Corresponds to `ClaimReview.itemReviewed.author.sameAs`.
	SameAs string `json:"sameAs,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1ClaimAuthor) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1ClaimAuthor
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating: Information about
// the claim rating.
type GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating struct {
	// BestRating: For numeric ratings, the best value possible in the scale
	// from worst to best.
	BestRating int64 `json:"bestRating,omitempty"`
	// ImageUrl: Corresponds to `ClaimReview.reviewRating.image`.
	ImageUrl string `json:"imageUrl,omitempty"`
	// RatingExplanation: Corresponds to
	// `ClaimReview.reviewRating.ratingExplanation`.
	RatingExplanation string `json:"ratingExplanation,omitempty"`
	// RatingValue: A numeric rating of this claim, in the range worstRating
	// to bestRating inclusive.
	RatingValue int64 `json:"ratingValue,omitempty"`
	// TextualRating: The truthfulness rating as a human-readible short word
	// or phrase.
	TextualRating string `json:"textualRating,omitempty"`
	// WorstRating: For numeric ratings, the worst value possible in the
	// scale from worst to best.
	WorstRating int64 `json:"worstRating,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1ClaimReview: Information about a
// claim review.
type GoogleFactcheckingFactchecktoolsV1alpha1ClaimReview struct {
	// LanguageCode: The language this review was written in. For instance,
	// "en" or "de".
	LanguageCode string `json:"languageCode,omitempty"`
	// Publisher: The publisher of this claim review.
	Publisher *GoogleFactcheckingFactchecktoolsV1alpha1Publisher `json:"publisher,omitempty"`
	// ReviewDate: The date the claim was reviewed.
	ReviewDate time.Time `json:"reviewDate,omitzero"`
	// TextualRating: Textual rating. For instance, "Mostly false".
	TextualRating string `json:"textualRating,omitempty"`
	// Title: The title of this claim review, if it can be determined.
	Title string `json:"title,omitempty"`
	// Url: The URL of this claim review.
	Url string `json:"url,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1ClaimReview) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1ClaimReview
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewAuthor: Information
// about the claim review author.
type GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewAuthor struct {
	// ImageUrl: Corresponds to `ClaimReview.author.image`.
	ImageUrl string `json:"imageUrl,omitempty"`
	// Name: Name of the organization that is publishing the fact check.
	Name string `json:"name,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewAuthor) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewAuthor
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkup: Fields for an
// individual `ClaimReview` element. Except for sub-messages that group
// fields together, each of these fields correspond those in
// https://schema.org/ClaimReview.
type GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkup struct {
	// ClaimAppearances: A list of links to works in which this claim
	// appears, aside from the one specified in `claim_first_appearance`.
	ClaimAppearances []string `json:"claimAppearances,omitempty"`
	// ClaimAuthor: Info about the author of this claim.
	ClaimAuthor *GoogleFactcheckingFactchecktoolsV1alpha1ClaimAuthor `json:"claimAuthor,omitempty"`
	// ClaimDate: The date when the claim was made or entered public
	// discourse. Corresponds to `ClaimReview.itemReviewed.datePublished`.
	ClaimDate string `json:"claimDate,omitempty"`
	// ClaimFirstAppearance: A link to a work in which this claim first
	// appears.
	ClaimFirstAppearance string `json:"claimFirstAppearance,omitempty"`
	// ClaimLocation: The location where this claim was made.
	ClaimLocation string `json:"claimLocation,omitempty"`
	// ClaimReviewed: A short summary of the claim being evaluated.
	ClaimReviewed string `json:"claimReviewed,omitempty"`
	// Rating: Info about the rating of this claim review.
	Rating *GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating `json:"rating,omitempty"`
	// Url: This field is optional, and will default to the page URL.
	Url string `json:"url,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkup) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkup
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage: Holds one
// or more instances of `ClaimReview` markup for a webpage.
type GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage struct {
	// ClaimReviewAuthor: Info about the author of this claim review.
	ClaimReviewAuthor *GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewAuthor `json:"claimReviewAuthor,omitempty"`
	// ClaimReviewMarkups: A list of individual claim reviews for this page.
	ClaimReviewMarkups []*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkup `json:"claimReviewMarkups,omitempty"`
	// Name: The name of this `ClaimReview` markup page resource, in the form
	// of `pages/{page_id}`. Except for update requests, this field is
	// output-only and should not be set by the user.
	Name string `json:"name,omitempty"`
	// PageUrl: The URL of the page associated with this `ClaimReview`
	// markup.
	PageUrl string `json:"pageUrl,omitempty"`
	// PublishDate: The date when the fact check was published.
	PublishDate string `json:"publishDate,omitempty"`
	// VersionId: The version ID for this markup. Except for update requests,
	// this field is output-only and should not be set by the user.
	VersionId string `json:"versionId,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse:
// Response from searching fact-checked claims by image.
type GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse struct {
	// NextPageToken: The next pagination token in the Search response. It
	// should be used as the `page_token` for the following request.
	NextPageToken string `json:"nextPageToken,omitempty"`
	// Results: The list of claims and all of their associated information.
	Results []*GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponseResult `json:"results,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponseResult:
// A claim and its associated information.
type GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponseResult struct {
	// Claim: A claim which matched the query.
	Claim *GoogleFactcheckingFactchecktoolsV1alpha1Claim `json:"claim,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponseResult) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponseResult
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimSearchResponse:
// Response from searching fact-checked claims.
type GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimSearchResponse struct {
	// Claims: The list of claims and all of their associated information.
	Claims []*GoogleFactcheckingFactchecktoolsV1alpha1Claim `json:"claims,omitempty"`
	// NextPageToken: The next pagination token in the Search response.
	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimSearchResponse) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimSearchResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1ListClaimReviewMarkupPagesResponse:
// Response from listing `ClaimReview` markup.
type GoogleFactcheckingFactchecktoolsV1alpha1ListClaimReviewMarkupPagesResponse struct {
	// ClaimReviewMarkupPages: The result list of pages of `ClaimReview`
	// markup.
	ClaimReviewMarkupPages []*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage `json:"claimReviewMarkupPages,omitempty"`
	// NextPageToken: The next pagination token in the Search response.
	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1ListClaimReviewMarkupPagesResponse) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1ListClaimReviewMarkupPagesResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleFactcheckingFactchecktoolsV1alpha1Publisher: Information about the
// publisher.
type GoogleFactcheckingFactchecktoolsV1alpha1Publisher struct {
	// Name: The name of this publisher. For instance, "Awesome Fact Checks".
	Name string `json:"name,omitempty"`
	// Site: Host-level site name, without the protocol or "www" prefix. For
	// instance, "awesomefactchecks.com".
	Site string `json:"site,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s GoogleFactcheckingFactchecktoolsV1alpha1Publisher) MarshalJSON() ([]byte, error) {
	type NoMethod GoogleFactcheckingFactchecktoolsV1alpha1Publisher
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// GoogleProtobufEmpty: A generic empty message that you can re-use to avoid
// defining duplicated empty messages in your APIs.
type GoogleProtobufEmpty struct {
	googleapi.ServerResponse `json:"-"`
}
