package vmmigration

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestVmwareVmDetailsRoundTrip(t *testing.T) {
	for _, mb := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		in := &VmwareVmDetails{VmId: "vm-1", CommittedStorageMb: mb, CpuCount: 2}
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		out := new(VmwareVmDetails)
		require.NoError(t, json.Unmarshal(raw, out))
		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip of %d mismatch (-want +got):\n%s", mb, diff)
		}
	}
}

func TestCommittedStorageWireForm(t *testing.T) {
	raw, err := json.Marshal(&VmwareVmDetails{CommittedStorageMb: 42})
	require.NoError(t, err)
	require.JSONEq(t, `{"committedStorageMb":"42"}`, string(raw))

	raw, err = json.Marshal(&VmwareVmDetails{ForceSendFields: []string{"CommittedStorageMb"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"committedStorageMb":"0"}`, string(raw))
}

func TestMigratingVmRoundTrip(t *testing.T) {
	for _, ts := range []time.Time{
		time.Unix(0, 0).UTC(),
		time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC),
		time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC),
	} {
		in := &MigratingVm{
			Name:       "projects/p/locations/l/sources/s/migratingVms/m",
			SourceVmId: "vm-5",
			CreateTime: ts,
			UpdateTime: ts,
			Labels:     map[string]string{"env": "prod"},
			Policy:     &SchedulePolicy{IdleDuration: "3600s", SkipOsAdaptation: true},
			LastSync:   &ReplicationSync{LastSyncTime: ts},
			CurrentSyncInfo: &ReplicationCycle{
				CycleNumber:     -1,
				ProgressPercent: 0,
				StartTime:       ts,
				State:           "RUNNING",
			},
			ComputeEngineTargetDefaults: &ComputeEngineTargetDefaults{
				VmName:      "web-1",
				NetworkTags: []string{"http"},
			},
		}
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		out := new(MigratingVm)
		require.NoError(t, json.Unmarshal(raw, out))
		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip at %v mismatch (-want +got):\n%s", ts, diff)
		}
	}
}

func TestUtilizationReportRoundTrip(t *testing.T) {
	for _, kbps := range []int64{0, 1, -1, 1 << 53, math.MaxInt64, math.MinInt64} {
		ts := time.Date(2024, 2, 29, 23, 59, 59, 500, time.UTC)
		in := &UtilizationReport{
			Name:         "projects/p/locations/l/sources/s/utilizationReports/r",
			TimeFrame:    "YEAR",
			CreateTime:   ts,
			FrameEndTime: ts,
			VmCount:      2,
			Vms: []*VmUtilizationInfo{{
				VmId: "vm-1",
				Utilization: &VmUtilizationMetrics{
					CpuAveragePercent:        40,
					DiskIoRateAverageKbps:    kbps,
					DiskIoRateMaxKbps:        kbps,
					NetworkThroughputMaxKbps: kbps,
				},
				VmwareVmDetails: &VmwareVmDetails{VmId: "vm-1", CommittedStorageMb: kbps},
			}},
		}
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		out := new(UtilizationReport)
		require.NoError(t, json.Unmarshal(raw, out))
		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip of %d mismatch (-want +got):\n%s", kbps, diff)
		}
	}
}

func TestUtilizationMetricsWireForm(t *testing.T) {
	raw, err := json.Marshal(&VmUtilizationMetrics{CpuMaxPercent: 5, DiskIoRateMaxKbps: 1 << 53})
	require.NoError(t, err)
	require.JSONEq(t, `{"cpuMaxPercent":5,"diskIoRateMaxKbps":"9007199254740992"}`, string(raw))

	raw, err = json.Marshal(&VmUtilizationMetrics{ForceSendFields: []string{"NetworkThroughputAverageKbps", "MemoryMaxPercent"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"networkThroughputAverageKbps":"0","memoryMaxPercent":0}`, string(raw))
}

func TestSourceNullLabels(t *testing.T) {
	raw, err := json.Marshal(&Source{Description: "d", NullFields: []string{"Labels"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"description":"d","labels":null}`, string(raw))
}
