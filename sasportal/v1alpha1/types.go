package sasportal

import (
	"encoding/json"
	"time"

	"google.golang.org/api/googleapi"

	"gapi/internal/gensupport"
)

// SasPortalAssignment: Associates `members` with a `role`.
type SasPortalAssignment struct {
	// Members: The identities the role is assigned to.
	Members []string `json:"members,omitempty"`
	// Role: Required. Role that is assigned to `members`.
	Role string `json:"role,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalAssignment) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalAssignment
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalChannelWithScore: The channel with score.
type SasPortalChannelWithScore struct {
	// FrequencyRange: The frequency range of the channel.
	FrequencyRange *SasPortalFrequencyRange `json:"frequencyRange,omitempty"`
	// Score: The channel score, normalized to be in the range [0,100].
	Score float64 `json:"score,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalChannelWithScore) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalChannelWithScore
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

func (s *SasPortalChannelWithScore) UnmarshalJSON(data []byte) error {
	type NoMethod SasPortalChannelWithScore
	var s1 struct {
		Score gensupport.JSONFloat64 `json:"score"`
		*NoMethod
	}
	s1.NoMethod = (*NoMethod)(s)
	if err := json.Unmarshal(data, &s1); err != nil {
		return err
	}
	s.Score = float64(s1.Score)
	return nil
}

// SasPortalCreateSignedDeviceRequest: Request for CreateSignedDevice.
type SasPortalCreateSignedDeviceRequest struct {
	// EncodedDevice: Required. JSON Web Token signed using a CPI private key.
	// Payload must be the JSON encoding of the device. The user_id field
	// must be set.
	EncodedDevice []byte `json:"encodedDevice,omitempty"`
	// InstallerId: Required. Unique installer id (CPI ID) from the Certified
	// Professional Installers database.
	InstallerId string `json:"installerId,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalCreateSignedDeviceRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalCreateSignedDeviceRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalCustomer: Entity representing a SAS customer.
type SasPortalCustomer struct {
	// DisplayName: Required. Name of the organization that the customer
	// entity represents.
	DisplayName string `json:"displayName,omitempty"`
	// Name: Output only. Resource name of the customer.
	Name string `json:"name,omitempty"`
	// SasUserIds: User IDs used by the devices belonging to this customer.
	SasUserIds []string `json:"sasUserIds,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalCustomer) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalCustomer
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalDeployment: The Deployment.
type SasPortalDeployment struct {
	// DisplayName: The deployment's display name.
	DisplayName string `json:"displayName,omitempty"`
	// Frns: Output only. The FCC Registration Numbers (FRNs) copied from its
	// direct parent.
	Frns []string `json:"frns,omitempty"`
	// Name: Output only. Resource name.
	Name string `json:"name,omitempty"`
	// SasUserIds: User ID used by the devices belonging to this deployment.
	SasUserIds []string `json:"sasUserIds,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalDeployment) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalDeployment
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

type SasPortalDevice struct {
	// ActiveConfig: Output only. Current configuration of the device as
	// registered to the SAS.
	ActiveConfig *SasPortalDeviceConfig `json:"activeConfig,omitempty"`
	// CurrentChannels: Output only. Current channels with scores.
	CurrentChannels []*SasPortalChannelWithScore `json:"currentChannels,omitempty"`
	// DeviceMetadata: Device parameters that can be overridden by both SAS
	// Portal and SAS registration requests.
	DeviceMetadata *SasPortalDeviceMetadata `json:"deviceMetadata,omitempty"`
	// DisplayName: Device display name.
	DisplayName string `json:"displayName,omitempty"`
	// FccId: The FCC identifier of the device.
	FccId string `json:"fccId,omitempty"`
	// GrantRangeAllowlists: Only ranges that are within the allowlists are
	// available for new grants.
	GrantRangeAllowlists []*SasPortalFrequencyRange `json:"grantRangeAllowlists,omitempty"`
	// Grants: Output only. Grants held by the device.
	Grants []*SasPortalDeviceGrant `json:"grants,omitempty"`
	// Name: Output only. The resource path name.
	Name string `json:"name,omitempty"`
	// PreloadedConfig: Configuration of the device, as specified via SAS
	// Portal API.
	PreloadedConfig *SasPortalDeviceConfig `json:"preloadedConfig,omitempty"`
	// SerialNumber: A serial number assigned to the device by the device
	// manufacturer.
	SerialNumber string `json:"serialNumber,omitempty"`
	// State: Output only. Device state.
	//
	// Possible values:
	//   "DEVICE_STATE_UNSPECIFIED"
	//   "RESERVED"
	//   "REGISTERED"
	//   "DEREGISTERED"
	State string `json:"state,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalDevice) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalDevice
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalDeviceAirInterface: Information about the device's air
// interface.
type SasPortalDeviceAirInterface struct {
	// RadioTechnology: Conditional. This field specifies the radio access
	// technology that is used for the CBSD.
	RadioTechnology string `json:"radioTechnology,omitempty"`
	// SupportedSpec: Optional. This field is related to the
	// `radioTechnology` and provides the air interface specification that
	// the CBSD is compliant with at the time of registration.
	SupportedSpec string `json:"supportedSpec,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalDeviceAirInterface) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalDeviceAirInterface
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalDeviceConfig: Information about the device configuration.
type SasPortalDeviceConfig struct {
	// AirInterface: Information about this device's air interface.
	AirInterface *SasPortalDeviceAirInterface `json:"airInterface,omitempty"`
	// CallSign: The call sign of the device operator.
	CallSign string `json:"callSign,omitempty"`
	// Category: FCC category of the device.
	//
	// Possible values:
	//   "DEVICE_CATEGORY_UNSPECIFIED"
	//   "DEVICE_CATEGORY_A"
	//   "DEVICE_CATEGORY_B"
	Category string `json:"category,omitempty"`
	// InstallationParams: Installation parameters for the device.
	InstallationParams *SasPortalInstallationParams `json:"installationParams,omitempty"`
	// IsSigned: Output only. Whether the configuration has been signed by a
	// CPI.
	IsSigned bool `json:"isSigned,omitempty"`
	// MeasurementCapabilities: Measurement reporting capabilities of the
	// device.
	MeasurementCapabilities []string `json:"measurementCapabilities,omitempty"`
	// Model: Information about this device model.
	Model *SasPortalDeviceModel `json:"model,omitempty"`
	// State: State of the configuration.
	//
	// Possible values:
	//   "DEVICE_CONFIG_STATE_UNSPECIFIED"
	//   "DRAFT"
	//   "FINAL"
	State string `json:"state,omitempty"`
	// UpdateTime: Output only. The last time the device configuration was
	// edited.
	UpdateTime time.Time `json:"updateTime,omitzero"`
	// UserId: The identifier of a device user.
	UserId string `json:"userId,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalDeviceConfig) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalDeviceConfig
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalDeviceGrant: Device grant. It is an authorization provided by
// the Spectrum Access System to a device to transmit using specified
// operating parameters after a successful heartbeat by the device.
type SasPortalDeviceGrant struct {
	// ChannelType: Type of channel used.
	//
	// Possible values:
	//   "CHANNEL_TYPE_UNSPECIFIED"
	//   "CHANNEL_TYPE_GAA"
	//   "CHANNEL_TYPE_PAL"
	ChannelType string `json:"channelType,omitempty"`
	// ExpireTime: The expiration time of the grant.
	ExpireTime time.Time `json:"expireTime,omitzero"`
	// FrequencyRange: The transmission frequency range.
	FrequencyRange *SasPortalFrequencyRange `json:"frequencyRange,omitempty"`
	// GrantId: Grant Id.
	GrantId string `json:"grantId,omitempty"`
	// LastHeartbeatTransmitExpireTime: The transmit expiration time of the
	// last heartbeat.
	LastHeartbeatTransmitExpireTime time.Time `json:"lastHeartbeatTransmitExpireTime,omitzero"`
	// MaxEirp: Maximum Equivalent Isotropically Radiated Power (EIRP)
	// permitted by the grant, in dBm/MHz.
	MaxEirp float64 `json:"maxEirp,omitempty"`
	// State: State of the grant.
	//
	// Possible values:
	//   "GRANT_STATE_UNSPECIFIED"
	//   "GRANT_STATE_GRANTED"
	//   "GRANT_STATE_TERMINATED"
	//   "GRANT_STATE_SUSPENDED"
	//   "GRANT_STATE_AUTHORIZED"
	//   "GRANT_STATE_EXPIRED"
	State string `json:"state,omitempty"`
	// SuspensionReason: If the grant is suspended, the reason(s) for
	// suspension.
	SuspensionReason []string `json:"suspensionReason,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalDeviceGrant) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalDeviceGrant
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

func (s *SasPortalDeviceGrant) UnmarshalJSON(data []byte) error {
	type NoMethod SasPortalDeviceGrant
	var s1 struct {
		MaxEirp gensupport.JSONFloat64 `json:"maxEirp"`
		*NoMethod
	}
	s1.NoMethod = (*NoMethod)(s)
	if err := json.Unmarshal(data, &s1); err != nil {
		return err
	}
	s.MaxEirp = float64(s1.MaxEirp)
	return nil
}

// SasPortalDeviceMetadata: Device data overridable by both SAS Portal and
// registration requests.
type SasPortalDeviceMetadata struct {
	// AntennaModel: If populated, the Antenna Model Pattern to use.
	AntennaModel string `json:"antennaModel,omitempty"`
	// CommonChannelGroup: Common Channel Group (CCG).
	CommonChannelGroup string `json:"commonChannelGroup,omitempty"`
	// InterferenceCoordinationGroup: Interference Coordination Group (ICG).
	InterferenceCoordinationGroup string `json:"interferenceCoordinationGroup,omitempty"`
	// NrqzValidated: Output only. Set to `true` if a CPI has validated that
	// they have coordinated with the National Quiet Zone office.
	NrqzValidated bool `json:"nrqzValidated,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalDeviceMetadata) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalDeviceMetadata
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalDeviceModel: Information about the model of the device.
type SasPortalDeviceModel struct {
	// FirmwareVersion: The firmware version of the device.
	FirmwareVersion string `json:"firmwareVersion,omitempty"`
	// HardwareVersion: The hardware version of the device.
	HardwareVersion string `json:"hardwareVersion,omitempty"`
	// Name: The name of the device model.
	Name string `json:"name,omitempty"`
	// SoftwareVersion: The software version of the device.
	SoftwareVersion string `json:"softwareVersion,omitempty"`
	// Vendor: The name of the device vendor.
	Vendor string `json:"vendor,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalDeviceModel) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalDeviceModel
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalEmpty: A generic empty message that you can re-use to avoid
// defining duplicated empty messages in your APIs.
type SasPortalEmpty struct {
	googleapi.ServerResponse `json:"-"`
}

// SasPortalFrequencyRange: Frequency range from `low_frequency` to
// `high_frequency`.
type SasPortalFrequencyRange struct {
	// HighFrequencyMhz: The highest frequency of the frequency range in MHz.
	HighFrequencyMhz float64 `json:"highFrequencyMhz,omitempty"`
	// LowFrequencyMhz: The lowest frequency of the frequency range in MHz.
	LowFrequencyMhz float64 `json:"lowFrequencyMhz,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalFrequencyRange) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalFrequencyRange
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

func (s *SasPortalFrequencyRange) UnmarshalJSON(data []byte) error {
	type NoMethod SasPortalFrequencyRange
	var s1 struct {
		HighFrequencyMhz gensupport.JSONFloat64 `json:"highFrequencyMhz"`
		LowFrequencyMhz  gensupport.JSONFloat64 `json:"lowFrequencyMhz"`
		*NoMethod
	}
	s1.NoMethod = (*NoMethod)(s)
	if err := json.Unmarshal(data, &s1); err != nil {
		return err
	}
	s.HighFrequencyMhz = float64(s1.HighFrequencyMhz)
	s.LowFrequencyMhz = float64(s1.LowFrequencyMhz)
	return nil
}

// SasPortalGenerateSecretRequest: Request for GenerateSecret.
type SasPortalGenerateSecretRequest struct {
}

// SasPortalGenerateSecretResponse: Response for GenerateSecret.
type SasPortalGenerateSecretResponse struct {
	// Secret: The secret generated by the string and used by
	// ValidateInstaller.
	Secret string `json:"secret,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalGenerateSecretResponse) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalGenerateSecretResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalGetPolicyRequest: Request message for `GetPolicy` method.
type SasPortalGetPolicyRequest struct {
	// Resource: Required. The resource for which the policy is being
	// requested.
	Resource string `json:"resource,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalGetPolicyRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalGetPolicyRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalInstallationParams: Information about the device installation
// parameters.
type SasPortalInstallationParams struct {
	// AntennaAzimuth: Boresight direction of the horizontal plane of the
	// antenna in degrees with respect to true north.
	AntennaAzimuth int64 `json:"antennaAzimuth,omitempty"`
	// AntennaBeamwidth: 3-dB antenna beamwidth of the antenna in the
	// horizontal-plane in degrees.
	AntennaBeamwidth int64 `json:"antennaBeamwidth,omitempty"`
	// AntennaDowntilt: Antenna downtilt in degrees.
	AntennaDowntilt int64 `json:"antennaDowntilt,omitempty"`
	// AntennaGain: Peak antenna gain in dBi.
	AntennaGain float64 `json:"antennaGain,omitempty"`
	// AntennaModel: If an external antenna is used, the antenna model is
	// optionally provided in this field.
	AntennaModel string `json:"antennaModel,omitempty"`
	// CpeCbsdIndication: If present, this parameter specifies whether the
	// CBSD is a CPE-CBSD or not.
	CpeCbsdIndication bool `json:"cpeCbsdIndication,omitempty"`
	// EirpCapability: This parameter is the maximum device EIRP in units of
	// dBm/10MHz and is an integer with a value between -127 and +47 (dBm/10
	// MHz) inclusive.
	EirpCapability int64 `json:"eirpCapability,omitempty"`
	// Height: Device antenna height in meters.
	Height float64 `json:"height,omitempty"`
	// HeightType: Specifies how the height is measured.
	//
	// Possible values:
	//   "HEIGHT_TYPE_UNSPECIFIED"
	//   "HEIGHT_TYPE_AGL"
	//   "HEIGHT_TYPE_AMSL"
	HeightType string `json:"heightType,omitempty"`
	// HorizontalAccuracy: A positive number in meters to indicate accuracy
	// of the device antenna horizontal location.
	HorizontalAccuracy float64 `json:"horizontalAccuracy,omitempty"`
	// IndoorDeployment: Whether the device antenna is indoor or not.
	IndoorDeployment bool `json:"indoorDeployment,omitempty"`
	// Latitude: Latitude of the device antenna location in degrees relative
	// to the WGS 84 datum.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude: Longitude of the device antenna location in degrees
	// relative to the WGS 84 datum.
	Longitude float64 `json:"longitude,omitempty"`
	// VerticalAccuracy: A positive number in meters to indicate accuracy of
	// the device antenna vertical location.
	VerticalAccuracy float64 `json:"verticalAccuracy,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalInstallationParams) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalInstallationParams
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

func (s *SasPortalInstallationParams) UnmarshalJSON(data []byte) error {
	type NoMethod SasPortalInstallationParams
	var s1 struct {
		AntennaGain        gensupport.JSONFloat64 `json:"antennaGain"`
		Height             gensupport.JSONFloat64 `json:"height"`
		HorizontalAccuracy gensupport.JSONFloat64 `json:"horizontalAccuracy"`
		Latitude           gensupport.JSONFloat64 `json:"latitude"`
		Longitude          gensupport.JSONFloat64 `json:"longitude"`
		VerticalAccuracy   gensupport.JSONFloat64 `json:"verticalAccuracy"`
		*NoMethod
	}
	s1.NoMethod = (*NoMethod)(s)
	if err := json.Unmarshal(data, &s1); err != nil {
		return err
	}
	s.AntennaGain = float64(s1.AntennaGain)
	s.Height = float64(s1.Height)
	s.HorizontalAccuracy = float64(s1.HorizontalAccuracy)
	s.Latitude = float64(s1.Latitude)
	s.Longitude = float64(s1.Longitude)
	s.VerticalAccuracy = float64(s1.VerticalAccuracy)
	return nil
}

// SasPortalListCustomersResponse: Response for `ListCustomers`.
type SasPortalListCustomersResponse struct {
	// Customers: The list of customers that match the request.
	Customers []*SasPortalCustomer `json:"customers,omitempty"`
	// NextPageToken: A pagination token returned from a previous call to
	// ListCustomers that indicates from where listing should continue.
	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalListCustomersResponse) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalListCustomersResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalListDevicesResponse: Response for ListDevices.
type SasPortalListDevicesResponse struct {
	// Devices: The devices that match the request.
	Devices []*SasPortalDevice `json:"devices,omitempty"`
	// NextPageToken: A pagination token returned from a previous call to
	// ListDevices that indicates from where listing should continue.
	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalListDevicesResponse) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalListDevicesResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalListNodesResponse: Response for ListNodes.
type SasPortalListNodesResponse struct {
	// NextPageToken: A pagination token returned from a previous call to
	// ListNodes that indicates from where listing should continue.
	NextPageToken string `json:"nextPageToken,omitempty"`
	// Nodes: The nodes that match the request.
	Nodes []*SasPortalNode `json:"nodes,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalListNodesResponse) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalListNodesResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalMoveDeviceRequest: Request for MoveDevice.
type SasPortalMoveDeviceRequest struct {
	// Destination: Required. The name of the new parent resource node or
	// customer to reparent the device under.
	Destination string `json:"destination,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalMoveDeviceRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalMoveDeviceRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalMoveNodeRequest: Request for MoveNode.
type SasPortalMoveNodeRequest struct {
	// Destination: Required. The name of the new parent resource node or
	// customer to reparent the node under.
	Destination string `json:"destination,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalMoveNodeRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalMoveNodeRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalNode: The Node.
type SasPortalNode struct {
	// DisplayName: The node's display name.
	DisplayName string `json:"displayName,omitempty"`
	// Name: Output only. Resource name.
	Name string `json:"name,omitempty"`
	// SasUserIds: User ids used by the devices belonging to this node.
	SasUserIds []string `json:"sasUserIds,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalNode) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalNode
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalOperation: This resource represents a long-running operation
// that is the result of a network API call.
type SasPortalOperation struct {
	// Done: If the value is `false`, it means the operation is still in
	// progress.
	Done bool `json:"done,omitempty"`
	// Error: The error result of the operation in case of failure or
	// cancellation.
	Error *SasPortalStatus `json:"error,omitempty"`
	// Metadata: Service-specific metadata associated with the operation.
	Metadata googleapi.RawMessage `json:"metadata,omitempty"`
	// Name: The server-assigned name.
	Name string `json:"name,omitempty"`
	// Response: The normal, successful response of the operation.
	Response googleapi.RawMessage `json:"response,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalOperation) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalOperation
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalPolicy: Defines an access control policy to the resources.
type SasPortalPolicy struct {
	// Assignments: List of assignments
	Assignments []*SasPortalAssignment `json:"assignments,omitempty"`
	// Etag: The etag is used for optimistic concurrency control as a way to
	// help prevent simultaneous updates of a policy from overwriting each
	// other.
	Etag []byte `json:"etag,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalPolicy) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalPolicy
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalSetPolicyRequest: Request message for `SetPolicy` method.
type SasPortalSetPolicyRequest struct {
	// DisableNotification: Optional. Set the field as `true` to disable the
	// onboarding notification.
	DisableNotification bool `json:"disableNotification,omitempty"`
	// Policy: Required. The policy to be applied to the `resource`.
	Policy *SasPortalPolicy `json:"policy,omitempty"`
	// Resource: Required. The resource for which the policy is being
	// specified.
	Resource string `json:"resource,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalSetPolicyRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalSetPolicyRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalSignDeviceRequest: Request for SignDevice.
type SasPortalSignDeviceRequest struct {
	// Device: Required. The device to sign.
	Device *SasPortalDevice `json:"device,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalSignDeviceRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalSignDeviceRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalStatus: The `Status` type defines a logical error model.
type SasPortalStatus struct {
	// Code: The status code, which should be an enum value of
	// google.rpc.Code.
	Code int64 `json:"code,omitempty"`
	// Details: A list of messages that carry the error details.
	Details []googleapi.RawMessage `json:"details,omitempty"`
	// Message: A developer-facing error message.
	Message string `json:"message,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalStatus) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalStatus
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalTestPermissionsRequest: Request message for `TestPermissions`
// method.
type SasPortalTestPermissionsRequest struct {
	// Permissions: The set of permissions to check for the `resource`.
	Permissions []string `json:"permissions,omitempty"`
	// Resource: Required. The resource for which the permissions are being
	// requested.
	Resource string `json:"resource,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalTestPermissionsRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalTestPermissionsRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalTestPermissionsResponse: Response message for `TestPermissions`
// method.
type SasPortalTestPermissionsResponse struct {
	// Permissions: A set of permissions that the caller is allowed.
	Permissions []string `json:"permissions,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalTestPermissionsResponse) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalTestPermissionsResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalUpdateSignedDeviceRequest: Request for UpdateSignedDevice.
type SasPortalUpdateSignedDeviceRequest struct {
	// EncodedDevice: Required. The JSON Web Token signed using a CPI private
	// key. Payload must be the JSON encoding of the device.
	EncodedDevice []byte `json:"encodedDevice,omitempty"`
	// InstallerId: Required. Unique installer ID (CPI ID) from the Certified
	// Professional Installers database.
	InstallerId string `json:"installerId,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalUpdateSignedDeviceRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalUpdateSignedDeviceRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalValidateInstallerRequest: Request for ValidateInstaller.
type SasPortalValidateInstallerRequest struct {
	// EncodedSecret: Required. JSON Web Token signed using a CPI private key.
	// Payload must include a "secret" claim whose value is the secret.
	EncodedSecret string `json:"encodedSecret,omitempty"`
	// InstallerId: Required. Unique installer id (CPI ID) from the Certified
	// Professional Installers database.
	InstallerId string `json:"installerId,omitempty"`
	// Secret: Required. Secret returned by the GenerateSecret.
	Secret string `json:"secret,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SasPortalValidateInstallerRequest) MarshalJSON() ([]byte, error) {
	type NoMethod SasPortalValidateInstallerRequest
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// SasPortalValidateInstallerResponse: Response for ValidateInstaller.
type SasPortalValidateInstallerResponse struct {
	googleapi.ServerResponse `json:"-"`
}
