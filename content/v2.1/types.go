package content

import (
	"google.golang.org/api/googleapi"

	"gapi/internal/gensupport"
)

// Account: Account data. After the creation of a new account it may take a
// few minutes before it's fully operational.
type Account struct {
	// AdsLinks: Linked Ads accounts that are active or pending approval.
	AdsLinks []*AccountAdsLink `json:"adsLinks,omitempty"`
	// AdultContent: Indicates whether the merchant sells adult content.
	AdultContent bool `json:"adultContent,omitempty"`
	// BusinessInformation: The business information of the account.
	BusinessInformation *AccountBusinessInformation `json:"businessInformation,omitempty"`
	// Id: Required. 64-bit Merchant Center account ID.
	Id uint64 `json:"id,omitempty,string"`
	// Kind: Identifies what kind of resource this is. Value: the fixed
	// string "content#account".
	Kind string `json:"kind,omitempty"`
	// LabelIds: Retrieved by the API, the list of label IDs assigned to the
	// account.
	LabelIds googleapi.Uint64s `json:"labelIds,omitempty"`
	// Name: Required. Display name for the account.
	Name string `json:"name,omitempty"`
	// SellerId: Client-specific, locally-unique, internal ID for the child
	// account.
	SellerId string `json:"sellerId,omitempty"`
	// Users: Users with access to the account.
	Users []*AccountUser `json:"users,omitempty"`
	// WebsiteUrl: The merchant's website.
	WebsiteUrl string `json:"websiteUrl,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Account) MarshalJSON() ([]byte, error) {
	type NoMethod Account
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountAddress struct {
	// Country: CLDR country code (for example, "US").
	Country string `json:"country,omitempty"`
	// Locality: City, town or commune.
	Locality string `json:"locality,omitempty"`
	// PostalCode: Postal code or ZIP (for example, "94043").
	PostalCode string `json:"postalCode,omitempty"`
	// Region: Top-level administrative subdivision of the country.
	Region string `json:"region,omitempty"`
	// StreetAddress: Street-level part of the address.
	StreetAddress string `json:"streetAddress,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountAddress) MarshalJSON() ([]byte, error) {
	type NoMethod AccountAddress
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountAdsLink struct {
	// AdsId: Customer ID of the Ads account.
	AdsId uint64 `json:"adsId,omitempty,string"`
	// Status: Status of the link between this Merchant Center account and
	// the Ads account.
	Status string `json:"status,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountAdsLink) MarshalJSON() ([]byte, error) {
	type NoMethod AccountAdsLink
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountBusinessInformation struct {
	// Address: The address of the business.
	Address *AccountAddress `json:"address,omitempty"`
	// CustomerService: The customer service information of the business.
	CustomerService *AccountCustomerService `json:"customerService,omitempty"`
	// PhoneNumber: The phone number of the business.
	PhoneNumber string `json:"phoneNumber,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountBusinessInformation) MarshalJSON() ([]byte, error) {
	type NoMethod AccountBusinessInformation
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountCustomerService struct {
	// Email: Customer service email.
	Email string `json:"email,omitempty"`
	// PhoneNumber: Customer service phone number.
	PhoneNumber string `json:"phoneNumber,omitempty"`
	// Url: Customer service URL.
	Url string `json:"url,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountCustomerService) MarshalJSON() ([]byte, error) {
	type NoMethod AccountCustomerService
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountIdentifier struct {
	// AggregatorId: The aggregator ID, set for aggregators and subaccounts.
	AggregatorId uint64 `json:"aggregatorId,omitempty,string"`
	// MerchantId: The merchant account ID, set for individual accounts and
	// subaccounts.
	MerchantId uint64 `json:"merchantId,omitempty,string"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountIdentifier) MarshalJSON() ([]byte, error) {
	type NoMethod AccountIdentifier
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountUser struct {
	// Admin: Whether user is an admin.
	Admin bool `json:"admin,omitempty"`
	// EmailAddress: User's email address.
	EmailAddress string `json:"emailAddress,omitempty"`
	// OrderManager: Whether user is an order manager.
	OrderManager bool `json:"orderManager,omitempty"`
	// PaymentsAnalyst: Whether user can access payment statements.
	PaymentsAnalyst bool `json:"paymentsAnalyst,omitempty"`
	// PaymentsManager: Whether user can manage payment settings.
	PaymentsManager bool `json:"paymentsManager,omitempty"`
	// ReportingManager: Whether user is a reporting manager.
	ReportingManager bool `json:"reportingManager,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountUser) MarshalJSON() ([]byte, error) {
	type NoMethod AccountUser
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountsAuthInfoResponse struct {
	// AccountIdentifiers: The account identifiers corresponding to the
	// authenticated user.
	AccountIdentifiers []*AccountIdentifier `json:"accountIdentifiers,omitempty"`
	// Kind: Identifies what kind of resource this is. Value: the fixed
	// string "content#accountsAuthInfoResponse".
	Kind string `json:"kind,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountsAuthInfoResponse) MarshalJSON() ([]byte, error) {
	type NoMethod AccountsAuthInfoResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountsCustomBatchRequest struct {
	// Entries: The request entries to be processed in the batch.
	Entries []*AccountsCustomBatchRequestEntry `json:"entries,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountsCustomBatchRequest) MarshalJSON() ([]byte, error) {
	type NoMethod AccountsCustomBatchRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// AccountsCustomBatchRequestEntry: A batch entry encoding a single non-batch
// accounts request.
type AccountsCustomBatchRequestEntry struct {
	// Account: The account to create or update. Only defined if the method
	// is `insert` or `update`.
	Account *Account `json:"account,omitempty"`
	// AccountId: The ID of the targeted account. Only defined if the method
	// is not `insert`.
	AccountId uint64 `json:"accountId,omitempty,string"`
	// BatchId: An entry ID, unique within the batch request.
	BatchId int64 `json:"batchId,omitempty"`
	// Force: Whether the account should be deleted if the account has offers.
	// Only applicable if the method is `delete`.
	Force bool `json:"force,omitempty"`
	// LabelIds: Label IDs for the 'updatelabels' request.
	LabelIds googleapi.Uint64s `json:"labelIds,omitempty"`
	// MerchantId: The ID of the managing account.
	MerchantId uint64 `json:"merchantId,omitempty,string"`
	// Method: The method of the batch entry. Acceptable values are: -
	// "claimWebsite" - "delete" - "get" - "insert" - "link" - "update"
	Method string `json:"method,omitempty"`
	// Overwrite: Only applicable if the method is `claimwebsite`.
	Overwrite bool `json:"overwrite,omitempty"`
	// View: Controls which fields are visible. Only applicable if the method
	// is 'get'.
	View string `json:"view,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountsCustomBatchRequestEntry) MarshalJSON() ([]byte, error) {
	type NoMethod AccountsCustomBatchRequestEntry
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountsCustomBatchResponse struct {
	// Entries: The result of the execution of the batch requests.
	Entries []*AccountsCustomBatchResponseEntry `json:"entries,omitempty"`
	// Kind: Identifies what kind of resource this is. Value: the fixed
	// string "content#accountsCustomBatchResponse".
	Kind string `json:"kind,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountsCustomBatchResponse) MarshalJSON() ([]byte, error) {
	type NoMethod AccountsCustomBatchResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// AccountsCustomBatchResponseEntry: A batch entry encoding a single
// non-batch accounts response.
type AccountsCustomBatchResponseEntry struct {
	// Account: The retrieved, created, or updated account.
	Account *Account `json:"account,omitempty"`
	// BatchId: The ID of the request entry this entry responds to.
	BatchId int64 `json:"batchId,omitempty"`
	// Errors: A list of errors for failed custombatch entries.
	Errors *Errors `json:"errors,omitempty"`
	// Kind: Identifies what kind of resource this is.
	Kind string `json:"kind,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountsCustomBatchResponseEntry) MarshalJSON() ([]byte, error) {
	type NoMethod AccountsCustomBatchResponseEntry
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type AccountsListResponse struct {
	// Kind: Identifies what kind of resource this is. Value: the fixed
	// string "content#accountsListResponse".
	Kind string `json:"kind,omitempty"`
	// NextPageToken: The token for the retrieval of the next page of
	// accounts.
	NextPageToken string     `json:"nextPageToken,omitempty"`
	Resources     []*Account `json:"resources,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s AccountsListResponse) MarshalJSON() ([]byte, error) {
	type NoMethod AccountsListResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// Error: An error returned by the API.
type Error struct {
	// Domain: The domain of the error.
	Domain string `json:"domain,omitempty"`
	// Message: A description of the error.
	Message string `json:"message,omitempty"`
	// Reason: The error code.
	Reason string `json:"reason,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Error) MarshalJSON() ([]byte, error) {
	type NoMethod Error
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// Errors: A list of errors returned by a failed batch entry.
type Errors struct {
	// Code: The HTTP status of the first error in `errors`.
	Code int64 `json:"code,omitempty"`
	// Errors: A list of errors.
	Errors []*Error `json:"errors,omitempty"`
	// Message: The message of the first error in `errors`.
	Message string `json:"message,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Errors) MarshalJSON() ([]byte, error) {
	type NoMethod Errors
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type Price struct {
	// Currency: The currency of the price.
	Currency string `json:"currency,omitempty"`
	// Value: The price represented as a number.
	Value string `json:"value,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Price) MarshalJSON() ([]byte, error) {
	type NoMethod Price
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// Product: Required product attributes are primarily defined by the
// product data specification.
type Product struct {
	// Adult: Should be set to true if the item is targeted towards adults.
	Adult bool `json:"adult,omitempty"`
	// Availability: Availability status of the item.
	Availability string `json:"availability,omitempty"`
	// Brand: Brand of the item.
	Brand string `json:"brand,omitempty"`
	// Channel: Required. The item's channel (online or local).
	Channel string `json:"channel,omitempty"`
	// Condition: Condition or state of the item.
	Condition string `json:"condition,omitempty"`
	// ContentLanguage: Required. The two-letter ISO 639-1 language code for
	// the item.
	ContentLanguage string `json:"contentLanguage,omitempty"`
	// CustomLabel0: Custom label 0 for custom grouping of items in a Shopping
	// campaign.
	CustomLabel0 string `json:"customLabel0,omitempty"`
	// Description: Description of the item.
	Description string `json:"description,omitempty"`
	// ExpirationDate: Date on which the item should expire, as specified upon
	// insertion, in ISO 8601 format.
	ExpirationDate string `json:"expirationDate,omitempty"`
	// FeedLabel: Feed label for the item.
	FeedLabel string `json:"feedLabel,omitempty"`
	// Gtin: Global Trade Item Number (GTIN) of the item.
	Gtin string `json:"gtin,omitempty"`
	// Id: The REST ID of the product. Content API methods that operate on
	// products take this as their `productId` parameter.
	Id string `json:"id,omitempty"`
	// IdentifierExists: False when the item does not have unique product
	// identifiers appropriate to its category.
	IdentifierExists bool `json:"identifierExists,omitempty"`
	// ImageLink: URL of an image of the item.
	ImageLink string `json:"imageLink,omitempty"`
	// Kind: Identifies what kind of resource this is. Value: the fixed
	// string "content#product"
	Kind string `json:"kind,omitempty"`
	// Link: URL directly linking to your item's page on your website.
	Link string `json:"link,omitempty"`
	// Multipack: The number of identical products in a merchant-defined
	// multipack.
	Multipack int64 `json:"multipack,omitempty,string"`
	// OfferId: Required. A unique identifier for the item.
	OfferId string `json:"offerId,omitempty"`
	// Price: Price of the item.
	Price *Price `json:"price,omitempty"`
	// SalePrice: Advertised sale price of the item.
	SalePrice *Price `json:"salePrice,omitempty"`
	// Sizes: Size of the item. Only one value is allowed.
	Sizes []string `json:"sizes,omitempty"`
	// TargetCountry: The CLDR territory code for the item's country of sale.
	TargetCountry string `json:"targetCountry,omitempty"`
	// Title: Title of the item.
	Title string `json:"title,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Product) MarshalJSON() ([]byte, error) {
	type NoMethod Product
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ProductStatus: The status of a product, that is, information about a
// product computed asynchronously.
type ProductStatus struct {
	// CreationDate: Date on which the item has been created, in ISO 8601
	// format.
	CreationDate string `json:"creationDate,omitempty"`
	// DestinationStatuses: The intended destinations for the product.
	DestinationStatuses []*ProductStatusDestinationStatus `json:"destinationStatuses,omitempty"`
	// GoogleExpirationDate: Date on which the item expires in Google
	// Shopping, in ISO 8601 format.
	GoogleExpirationDate string `json:"googleExpirationDate,omitempty"`
	// ItemLevelIssues: A list of all issues associated with the product.
	ItemLevelIssues []*ProductStatusItemLevelIssue `json:"itemLevelIssues,omitempty"`
	// Kind: Identifies what kind of resource this is.
	Kind string `json:"kind,omitempty"`
	// LastUpdateDate: Date on which the item has been last updated, in ISO
	// 8601 format.
	LastUpdateDate string `json:"lastUpdateDate,omitempty"`
	// Link: The link to the product.
	Link string `json:"link,omitempty"`
	// ProductId: The ID of the product for which status is reported.
	ProductId string `json:"productId,omitempty"`
	// Title: The title of the product.
	Title string `json:"title,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductStatus) MarshalJSON() ([]byte, error) {
	type NoMethod ProductStatus
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type ProductStatusDestinationStatus struct {
	// ApprovedCountries: List of country codes (ISO 3166-1 alpha-2) where
	// the offer is approved.
	ApprovedCountries []string `json:"approvedCountries,omitempty"`
	// Destination: The name of the destination
	Destination string `json:"destination,omitempty"`
	// DisapprovedCountries: List of country codes where the offer is
	// disapproved.
	DisapprovedCountries []string `json:"disapprovedCountries,omitempty"`
	// PendingCountries: List of country codes where the offer is pending
	// approval.
	PendingCountries []string `json:"pendingCountries,omitempty"`
	// Status: Deprecated. Destination approval status in `targetCountry` of
	// the offer.
	Status string `json:"status,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductStatusDestinationStatus) MarshalJSON() ([]byte, error) {
	type NoMethod ProductStatusDestinationStatus
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type ProductStatusItemLevelIssue struct {
	// ApplicableCountries: List of country codes (ISO 3166-1 alpha-2) where
	// issue applies to the offer.
	ApplicableCountries []string `json:"applicableCountries,omitempty"`
	// AttributeName: The attribute's name, if the issue is caused by a
	// single attribute.
	AttributeName string `json:"attributeName,omitempty"`
	// Code: The error code of the issue.
	Code string `json:"code,omitempty"`
	// Description: A short issue description in English.
	Description string `json:"description,omitempty"`
	// Destination: The destination the issue applies to.
	Destination string `json:"destination,omitempty"`
	// Detail: A detailed issue description in English.
	Detail string `json:"detail,omitempty"`
	// Documentation: The URL of a web page to help with resolving this
	// issue.
	Documentation string `json:"documentation,omitempty"`
	// Resolution: Whether the issue can be resolved by the merchant.
	Resolution string `json:"resolution,omitempty"`
	// Servability: How this issue affects serving of the offer.
	Servability string `json:"servability,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductStatusItemLevelIssue) MarshalJSON() ([]byte, error) {
	type NoMethod ProductStatusItemLevelIssue
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type ProductsCustomBatchRequest struct {
	// Entries: The request entries to be processed in the batch.
	Entries []*ProductsCustomBatchRequestEntry `json:"entries,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductsCustomBatchRequest) MarshalJSON() ([]byte, error) {
	type NoMethod ProductsCustomBatchRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ProductsCustomBatchRequestEntry: A batch entry encoding a single non-batch
// products request.
type ProductsCustomBatchRequestEntry struct {
	// BatchId: An entry ID, unique within the batch request.
	BatchId int64 `json:"batchId,omitempty"`
	// FeedId: The Content API Supplemental Feed ID.
	FeedId uint64 `json:"feedId,omitempty,string"`
	// MerchantId: The ID of the managing account.
	MerchantId uint64 `json:"merchantId,omitempty,string"`
	// Method: The method of the batch entry. Acceptable values are: -
	// "delete" - "get" - "insert" - "update"
	Method string `json:"method,omitempty"`
	// Product: The product to insert or update.
	Product *Product `json:"product,omitempty"`
	// ProductId: The ID of the product to get, delete or update.
	ProductId string `json:"productId,omitempty"`
	// UpdateMask: The comma-separated list of product attributes to be
	// updated.
	UpdateMask string `json:"updateMask,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductsCustomBatchRequestEntry) MarshalJSON() ([]byte, error) {
	type NoMethod ProductsCustomBatchRequestEntry
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type ProductsCustomBatchResponse struct {
	// Entries: The result of the execution of the batch requests.
	Entries []*ProductsCustomBatchResponseEntry `json:"entries,omitempty"`
	// Kind: Identifies what kind of resource this is.
	Kind string `json:"kind,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductsCustomBatchResponse) MarshalJSON() ([]byte, error) {
	type NoMethod ProductsCustomBatchResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ProductsCustomBatchResponseEntry: A batch entry encoding a single
// non-batch products response.
type ProductsCustomBatchResponseEntry struct {
	// BatchId: The ID of the request entry this entry responds to.
	BatchId int64 `json:"batchId,omitempty"`
	// Errors: A list of errors for failed custombatch entries.
	Errors *Errors `json:"errors,omitempty"`
	// Kind: Identifies what kind of resource this is.
	Kind string `json:"kind,omitempty"`
	// Product: The inserted product. Only defined if the method is `insert`
	// and if the request was successful.
	Product *Product `json:"product,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductsCustomBatchResponseEntry) MarshalJSON() ([]byte, error) {
	type NoMethod ProductsCustomBatchResponseEntry
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type ProductsListResponse struct {
	// Kind: Identifies what kind of resource this is.
	Kind string `json:"kind,omitempty"`
	// NextPageToken: The token for the retrieval of the next page of
	// products.
	NextPageToken string     `json:"nextPageToken,omitempty"`
	Resources     []*Product `json:"resources,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductsListResponse) MarshalJSON() ([]byte, error) {
	type NoMethod ProductsListResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type ProductstatusesListResponse struct {
	// Kind: Identifies what kind of resource this is.
	Kind string `json:"kind,omitempty"`
	// NextPageToken: The token for the retrieval of the next page of
	// products statuses.
	NextPageToken string           `json:"nextPageToken,omitempty"`
	Resources     []*ProductStatus `json:"resources,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ProductstatusesListResponse) MarshalJSON() ([]byte, error) {
	type NoMethod ProductstatusesListResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}
