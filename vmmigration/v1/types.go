package vmmigration

import (
	"time"

	"google.golang.org/api/googleapi"

	"gapi/internal/gensupport"
)

// CancelOperationRequest: The request message for Operations.CancelOperation.
type CancelOperationRequest struct {
}

// ComputeEngineTargetDefaults: ComputeEngineTargetDefaults is a collection
// of details for creating a VM in a target Compute Engine project.
type ComputeEngineTargetDefaults struct {
	// DiskType: The disk type to use in the VM.
	//
	// Possible values:
	//   "COMPUTE_ENGINE_DISK_TYPE_UNSPECIFIED"
	//   "COMPUTE_ENGINE_DISK_TYPE_STANDARD"
	//   "COMPUTE_ENGINE_DISK_TYPE_SSD"
	//   "COMPUTE_ENGINE_DISK_TYPE_BALANCED"
	DiskType string `json:"diskType,omitempty"`
	// Hostname: The hostname to assign to the VM.
	Hostname string `json:"hostname,omitempty"`
	// Labels: A map of labels to associate with the VM.
	Labels map[string]string `json:"labels,omitempty"`
	// MachineType: The machine type to create the VM with.
	MachineType string `json:"machineType,omitempty"`
	// NetworkTags: A list of network tags to associate with the VM.
	NetworkTags []string `json:"networkTags,omitempty"`
	// TargetProject: The full path of the resource of type TargetProject
	// which represents the Compute Engine project in which to create this VM.
	TargetProject string `json:"targetProject,omitempty"`
	// VmName: The name of the VM to create.
	VmName string `json:"vmName,omitempty"`
	// Zone: The zone in which to create the VM.
	Zone string `json:"zone,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ComputeEngineTargetDefaults) MarshalJSON() ([]byte, error) {
	type NoMethod ComputeEngineTargetDefaults
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// Empty: A generic empty message that you can re-use to avoid defining
// duplicated empty messages in your APIs.
type Empty struct {
	googleapi.ServerResponse `json:"-"`
}

// FetchInventoryResponse: Response message for fetchInventory.
type FetchInventoryResponse struct {
	// NextPageToken: A token, which can be sent as `page_token` to retrieve
	// the next page.
	NextPageToken string `json:"nextPageToken,omitempty"`
	// UpdateTime: Output only. The timestamp when the source was last
	// queried (if the result is from the cache).
	UpdateTime time.Time `json:"updateTime,omitzero"`
	// VmwareVms: The description of the VMs in a Source of type Vmware.
	VmwareVms *VmwareVmsDetails `json:"vmwareVms,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s FetchInventoryResponse) MarshalJSON() ([]byte, error) {
	type NoMethod FetchInventoryResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// FinalizeMigrationRequest: Request message for 'FinalizeMigration' request.
type FinalizeMigrationRequest struct {
}

// ListLocationsResponse: The response message for Locations.ListLocations.
type ListLocationsResponse struct {
	// Locations: A list of locations that matches the specified filter in
	// the request.
	Locations []*Location `json:"locations,omitempty"`
	// NextPageToken: The standard List next-page token.
	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ListLocationsResponse) MarshalJSON() ([]byte, error) {
	type NoMethod ListLocationsResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ListMigratingVmsResponse: Response message for 'ListMigratingVms' request.
type ListMigratingVmsResponse struct {
	// MigratingVms: Output only. The list of Migrating VMs response.
	MigratingVms []*MigratingVm `json:"migratingVms,omitempty"`
	// NextPageToken: Output only. A token, which can be sent as `page_token`
	// to retrieve the next page.
	NextPageToken string `json:"nextPageToken,omitempty"`
	// Unreachable: Output only. Locations that could not be reached.
	Unreachable []string `json:"unreachable,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ListMigratingVmsResponse) MarshalJSON() ([]byte, error) {
	type NoMethod ListMigratingVmsResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ListOperationsResponse: The response message for
// Operations.ListOperations.
type ListOperationsResponse struct {
	// NextPageToken: The standard List next-page token.
	NextPageToken string `json:"nextPageToken,omitempty"`
	// Operations: A list of operations that matches the specified filter in
	// the request.
	Operations []*Operation `json:"operations,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ListOperationsResponse) MarshalJSON() ([]byte, error) {
	type NoMethod ListOperationsResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ListSourcesResponse: Response message for 'ListSources' request.
type ListSourcesResponse struct {
	// NextPageToken: Output only. A token, which can be sent as `page_token`
	// to retrieve the next page.
	NextPageToken string `json:"nextPageToken,omitempty"`
	// Sources: Output only. The list of sources response.
	Sources []*Source `json:"sources,omitempty"`
	// Unreachable: Output only. Locations that could not be reached.
	Unreachable []string `json:"unreachable,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ListSourcesResponse) MarshalJSON() ([]byte, error) {
	type NoMethod ListSourcesResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ListUtilizationReportsResponse: Response message for
// 'ListUtilizationReports' request.
type ListUtilizationReportsResponse struct {
	// NextPageToken: Output only. A token, which can be sent as `page_token`
	// to retrieve the next page.
	NextPageToken string `json:"nextPageToken,omitempty"`
	// Unreachable: Output only. Locations that could not be reached.
	Unreachable []string `json:"unreachable,omitempty"`
	// UtilizationReports: Output only. The list of reports.
	UtilizationReports []*UtilizationReport `json:"utilizationReports,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ListUtilizationReportsResponse) MarshalJSON() ([]byte, error) {
	type NoMethod ListUtilizationReportsResponse
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// Location: A resource that represents a Google Cloud location.
type Location struct {
	// DisplayName: The friendly name for this location, typically a nearby
	// city name. For example, "Tokyo".
	DisplayName string `json:"displayName,omitempty"`
	// Labels: Cross-service attributes for the location.
	Labels map[string]string `json:"labels,omitempty"`
	// LocationId: The canonical id for this location. For example:
	// "us-east1".
	LocationId string `json:"locationId,omitempty"`
	// Metadata: Service-specific metadata. For example the available
	// capacity at the given location.
	Metadata googleapi.RawMessage `json:"metadata,omitempty"`
	// Name: Resource name for the location, which may vary between
	// implementations.
	Name string `json:"name,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Location) MarshalJSON() ([]byte, error) {
	type NoMethod Location
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// MigratingVm: MigratingVm describes the VM that will be migrated from a
// Source environment and its replication state.
type MigratingVm struct {
	// ComputeEngineTargetDefaults: Details of the target VM in Compute
	// Engine.
	ComputeEngineTargetDefaults *ComputeEngineTargetDefaults `json:"computeEngineTargetDefaults,omitempty"`
	// CreateTime: Output only. The time the migrating VM was created.
	CreateTime time.Time `json:"createTime,omitzero"`
	// CurrentSyncInfo: Output only. Details of the current running
	// replication cycle.
	CurrentSyncInfo *ReplicationCycle `json:"currentSyncInfo,omitempty"`
	// Description: The description attached to the migrating VM by the user.
	Description string `json:"description,omitempty"`
	// DisplayName: The display name attached to the MigratingVm by the user.
	DisplayName string `json:"displayName,omitempty"`
	// Error: Output only. Provides details on the state of the Migrating VM
	// in case of an error in replication.
	Error *Status `json:"error,omitempty"`
	// Group: Output only. The group this migrating vm is included in, if any.
	Group string `json:"group,omitempty"`
	// Labels: The labels of the migrating VM.
	Labels map[string]string `json:"labels,omitempty"`
	// LastSync: Output only. The most updated snapshot created time in the
	// source that finished replication.
	LastSync *ReplicationSync `json:"lastSync,omitempty"`
	// Name: Output only. The identifier of the MigratingVm.
	Name string `json:"name,omitempty"`
	// Policy: The replication schedule policy.
	Policy *SchedulePolicy `json:"policy,omitempty"`
	// SourceVmId: The unique ID of the VM in the source.
	SourceVmId string `json:"sourceVmId,omitempty"`
	// State: Output only. State of the MigratingVm.
	//
	// Possible values:
	//   "STATE_UNSPECIFIED"
	//   "PENDING"
	//   "READY"
	//   "FIRST_SYNC"
	//   "ACTIVE"
	//   "CUTTING_OVER"
	//   "CUTOVER"
	//   "FINAL_SYNC"
	//   "PAUSED"
	//   "FINALIZING"
	//   "FINALIZED"
	//   "ERROR"
	State string `json:"state,omitempty"`
	// StateTime: Output only. The last time the migrating VM state was
	// updated.
	StateTime time.Time `json:"stateTime,omitzero"`
	// UpdateTime: Output only. The last time the migrating VM resource was
	// updated.
	UpdateTime time.Time `json:"updateTime,omitzero"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s MigratingVm) MarshalJSON() ([]byte, error) {
	type NoMethod MigratingVm
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// Operation: This resource represents a long-running operation that is the
// result of a network API call.
type Operation struct {
	// Done: If the value is `false`, it means the operation is still in
	// progress. If `true`, the operation is completed, and either `error` or
	// `response` is available.
	Done bool `json:"done,omitempty"`
	// Error: The error result of the operation in case of failure or
	// cancellation.
	Error *Status `json:"error,omitempty"`
	// Metadata: Service-specific metadata associated with the operation.
	Metadata googleapi.RawMessage `json:"metadata,omitempty"`
	// Name: The server-assigned name, which is only unique within the same
	// service that originally returns it.
	Name string `json:"name,omitempty"`
	// Response: The normal, successful response of the operation.
	Response googleapi.RawMessage `json:"response,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Operation) MarshalJSON() ([]byte, error) {
	type NoMethod Operation
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// PauseMigrationRequest: Request message for 'PauseMigration' request.
type PauseMigrationRequest struct {
}

// ReplicationCycle: ReplicationCycle contains information about the
// current replication cycle status.
type ReplicationCycle struct {
	// CycleNumber: The cycle's ordinal number.
	CycleNumber int64 `json:"cycleNumber,omitempty"`
	// EndTime: The time the replication cycle has ended.
	EndTime time.Time `json:"endTime,omitzero"`
	// Error: Provides details on the state of the cycle in case of an error.
	Error *Status `json:"error,omitempty"`
	// Name: The identifier of the ReplicationCycle.
	Name string `json:"name,omitempty"`
	// ProgressPercent: The current progress in percentage of this cycle.
	ProgressPercent int64 `json:"progressPercent,omitempty"`
	// StartTime: The time the replication cycle has started.
	StartTime time.Time `json:"startTime,omitzero"`
	// State: State of the ReplicationCycle.
	//
	// Possible values:
	//   "STATE_UNSPECIFIED"
	//   "RUNNING"
	//   "PAUSED"
	//   "FAILED"
	//   "SUCCEEDED"
	State string `json:"state,omitempty"`
	// TotalPauseDuration: The accumulated duration the replication cycle was
	// paused.
	TotalPauseDuration string `json:"totalPauseDuration,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ReplicationCycle) MarshalJSON() ([]byte, error) {
	type NoMethod ReplicationCycle
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ReplicationSync: ReplicationSync contain information about the last
// replica sync to the cloud.
type ReplicationSync struct {
	// LastSyncTime: The most updated snapshot created time in the source
	// that finished replication.
	LastSyncTime time.Time `json:"lastSyncTime,omitzero"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s ReplicationSync) MarshalJSON() ([]byte, error) {
	type NoMethod ReplicationSync
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// ResumeMigrationRequest: Request message for 'ResumeMigration' request.
type ResumeMigrationRequest struct {
}

// SchedulePolicy: A policy for scheduling replications.
type SchedulePolicy struct {
	// IdleDuration: The idle duration between replication stages.
	IdleDuration string `json:"idleDuration,omitempty"`
	// SkipOsAdaptation: A flag to indicate whether to skip OS adaptation
	// during the replication sync.
	SkipOsAdaptation bool `json:"skipOsAdaptation,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s SchedulePolicy) MarshalJSON() ([]byte, error) {
	type NoMethod SchedulePolicy
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// Source: Source message describes a specific vm migration Source resource.
// It contains the source environment information.
type Source struct {
	// CreateTime: Output only. The create time timestamp.
	CreateTime time.Time `json:"createTime,omitzero"`
	// Description: User-provided description of the source.
	Description string `json:"description,omitempty"`
	// Labels: The labels of the source.
	Labels map[string]string `json:"labels,omitempty"`
	// Name: Output only. The Source name.
	Name string `json:"name,omitempty"`
	// UpdateTime: Output only. The update time timestamp.
	UpdateTime time.Time `json:"updateTime,omitzero"`
	// Vmware: Vmware type source details.
	Vmware *VmwareSourceDetails `json:"vmware,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Source) MarshalJSON() ([]byte, error) {
	type NoMethod Source
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// StartMigrationRequest: Request message for 'StartMigrationRequest'
// request.
type StartMigrationRequest struct {
}

// Status: The `Status` type defines a logical error model that is suitable
// for different programming environments, including REST APIs and RPC APIs.
type Status struct {
	// Code: The status code, which should be an enum value of
	// google.rpc.Code.
	Code int64 `json:"code,omitempty"`
	// Details: A list of messages that carry the error details.
	Details []googleapi.RawMessage `json:"details,omitempty"`
	// Message: A developer-facing error message, which should be in English.
	Message string `json:"message,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s Status) MarshalJSON() ([]byte, error) {
	type NoMethod Status
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// UtilizationReport: Utilization report details the utilization (CPU,
// memory, etc.) of selected source VMs.
type UtilizationReport struct {
	// CreateTime: Output only. The time the report was created.
	CreateTime time.Time `json:"createTime,omitzero"`
	// DisplayName: The report display name, as assigned by the user.
	DisplayName string `json:"displayName,omitempty"`
	// Error: Output only. Provides details on the state of the report in case
	// of an error.
	Error *Status `json:"error,omitempty"`
	// FrameEndTime: Output only. The point in time when the time frame ends.
	// The time frame is counted backwards from it.
	FrameEndTime time.Time `json:"frameEndTime,omitzero"`
	// Name: Output only. The report unique name.
	Name string `json:"name,omitempty"`
	// State: Output only. Current state of the report.
	//
	// Possible values:
	//   "STATE_UNSPECIFIED"
	//   "CREATING"
	//   "SUCCEEDED"
	//   "FAILED"
	State string `json:"state,omitempty"`
	// StateTime: Output only. The time the state was last set.
	StateTime time.Time `json:"stateTime,omitzero"`
	// TimeFrame: Time frame of the report.
	//
	// Possible values:
	//   "TIME_FRAME_UNSPECIFIED"
	//   "WEEK"
	//   "MONTH"
	//   "YEAR"
	TimeFrame string `json:"timeFrame,omitempty"`
	// VmCount: Output only. Total number of VMs included in the report.
	VmCount int64 `json:"vmCount,omitempty"`
	// Vms: List of utilization information per VM. On create only the
	// "vm_id" field of each entry is read.
	Vms []*VmUtilizationInfo `json:"vms,omitempty"`

	googleapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s UtilizationReport) MarshalJSON() ([]byte, error) {
	type NoMethod UtilizationReport
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// VmUtilizationInfo: Utilization information of a single VM.
type VmUtilizationInfo struct {
	// Utilization: Utilization metrics for this VM.
	Utilization *VmUtilizationMetrics `json:"utilization,omitempty"`
	// VmId: The VM's ID in the source.
	VmId string `json:"vmId,omitempty"`
	// VmwareVmDetails: The description of the VM in a Source of type Vmware.
	VmwareVmDetails *VmwareVmDetails `json:"vmwareVmDetails,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s VmUtilizationInfo) MarshalJSON() ([]byte, error) {
	type NoMethod VmUtilizationInfo
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// VmUtilizationMetrics: Utilization metrics values for a single VM.
type VmUtilizationMetrics struct {
	// CpuAveragePercent: Average CPU usage, percent.
	CpuAveragePercent int64 `json:"cpuAveragePercent,omitempty"`
	// CpuMaxPercent: Max CPU usage, percent.
	CpuMaxPercent int64 `json:"cpuMaxPercent,omitempty"`
	// DiskIoRateAverageKbps: Average disk IO rate, in kilobytes per second.
	DiskIoRateAverageKbps int64 `json:"diskIoRateAverageKbps,omitempty,string"`
	// DiskIoRateMaxKbps: Max disk IO rate, in kilobytes per second.
	DiskIoRateMaxKbps int64 `json:"diskIoRateMaxKbps,omitempty,string"`
	// MemoryAveragePercent: Average memory usage, percent.
	MemoryAveragePercent int64 `json:"memoryAveragePercent,omitempty"`
	// MemoryMaxPercent: Max memory usage, percent.
	MemoryMaxPercent int64 `json:"memoryMaxPercent,omitempty"`
	// NetworkThroughputAverageKbps: Average network throughput (combined
	// transmit-rates and receive-rates), in kilobytes per second.
	NetworkThroughputAverageKbps int64 `json:"networkThroughputAverageKbps,omitempty,string"`
	// NetworkThroughputMaxKbps: Max network throughput (combined
	// transmit-rates and receive-rates), in kilobytes per second.
	NetworkThroughputMaxKbps int64 `json:"networkThroughputMaxKbps,omitempty,string"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s VmUtilizationMetrics) MarshalJSON() ([]byte, error) {
	type NoMethod VmUtilizationMetrics
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// VmwareSourceDetails: VmwareSourceDetails message describes a specific
// source details for the vmware source type.
type VmwareSourceDetails struct {
	// Password: Input only. The credentials password. This is write only and
	// can not be read in a GET operation.
	Password string `json:"password,omitempty"`
	// ResolvedVcenterHost: The hostname of the vcenter.
	ResolvedVcenterHost string `json:"resolvedVcenterHost,omitempty"`
	// Thumbprint: The thumbprint representing the certificate for the
	// vcenter.
	Thumbprint string `json:"thumbprint,omitempty"`
	// Username: The credentials username.
	Username string `json:"username,omitempty"`
	// VcenterIp: The ip address of the vcenter this Source represents.
	VcenterIp string `json:"vcenterIp,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s VmwareSourceDetails) MarshalJSON() ([]byte, error) {
	type NoMethod VmwareSourceDetails
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// VmwareVmDetails: VmwareVmDetails describes a VM in vCenter.
type VmwareVmDetails struct {
	// BootOption: Output only. The VM Boot Option.
	//
	// Possible values:
	//   "BOOT_OPTION_UNSPECIFIED"
	//   "EFI"
	//   "BIOS"
	BootOption string `json:"bootOption,omitempty"`
	// CommittedStorageMb: The total size of the storage allocated to the VM
	// in MB.
	CommittedStorageMb int64 `json:"committedStorageMb,omitempty,string"`
	// CpuCount: The number of cpus in the VM.
	CpuCount int64 `json:"cpuCount,omitempty"`
	// DatacenterDescription: The descriptive name of the vCenter's
	// datacenter this VM is contained in.
	DatacenterDescription string `json:"datacenterDescription,omitempty"`
	// DatacenterId: The id of the vCenter's datacenter this VM is contained
	// in.
	DatacenterId string `json:"datacenterId,omitempty"`
	// DiskCount: The number of disks the VM has.
	DiskCount int64 `json:"diskCount,omitempty"`
	// DisplayName: The display name of the VM. Note that this is not
	// necessarily unique.
	DisplayName string `json:"displayName,omitempty"`
	// GuestDescription: The VM's OS.
	GuestDescription string `json:"guestDescription,omitempty"`
	// MemoryMb: The size of the memory of the VM in MB.
	MemoryMb int64 `json:"memoryMb,omitempty"`
	// PowerState: The power state of the VM at the moment list was taken.
	//
	// Possible values:
	//   "POWER_STATE_UNSPECIFIED"
	//   "ON"
	//   "OFF"
	//   "SUSPENDED"
	PowerState string `json:"powerState,omitempty"`
	// Uuid: The unique identifier of the VM in vCenter.
	Uuid string `json:"uuid,omitempty"`
	// VmId: The VM's id in the source (note that this is not the MigratingVm's
	// id). This is the moref id of the VM.
	VmId string `json:"vmId,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s VmwareVmDetails) MarshalJSON() ([]byte, error) {
	type NoMethod VmwareVmDetails
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}

// VmwareVmsDetails: VmwareVmsDetails describes VMs in vCenter.
type VmwareVmsDetails struct {
	// Details: The details of the vmware VMs.
	Details []*VmwareVmDetails `json:"details,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s VmwareVmsDetails) MarshalJSON() ([]byte, error) {
	type NoMethod VmwareVmsDetails
	return gensupport.MarshalJSON(NoMethod(s), s.ForceSendFields, s.NullFields)
}
