package sasportal

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestSignedDeviceBytesRoundTrip(t *testing.T) {
	for _, b := range [][]byte{nil, {}, {0}, {0, 1, 2}, []byte("header.payload.signature"), {0xff, 0xfe, 0xfd}} {
		in := &SasPortalCreateSignedDeviceRequest{EncodedDevice: b, InstallerId: "cpi"}
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		out := new(SasPortalCreateSignedDeviceRequest)
		require.NoError(t, json.Unmarshal(raw, out))
		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip of %v mismatch (-want +got):\n%s", b, diff)
		}
	}
}

func TestBytesWireForm(t *testing.T) {
	raw, err := json.Marshal(&SasPortalPolicy{Etag: []byte{0, 1, 2}})
	require.NoError(t, err)
	require.JSONEq(t, `{"etag":"AAEC"}`, string(raw))

	raw, err = json.Marshal(&SasPortalPolicy{ForceSendFields: []string{"Etag"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"etag":""}`, string(raw))
}

func TestInstallationParamsFloats(t *testing.T) {
	var p SasPortalInstallationParams
	require.NoError(t, json.Unmarshal([]byte(`{"latitude":37.42,"longitude":"-122.08","height":"Infinity","antennaGain":"NaN","antennaAzimuth":270}`), &p))
	require.Equal(t, 37.42, p.Latitude)
	require.Equal(t, -122.08, p.Longitude)
	require.True(t, math.IsInf(p.Height, 1))
	require.True(t, math.IsNaN(p.AntennaGain))
	require.Equal(t, int64(270), p.AntennaAzimuth)
}

func TestInstallationParamsNonFiniteRoundTrip(t *testing.T) {
	var p SasPortalInstallationParams
	require.NoError(t, json.Unmarshal([]byte(`{"height":"Infinity","antennaGain":"NaN","latitude":"-Infinity","longitude":-122.08}`), &p))

	raw, err := json.Marshal(&p)
	require.NoError(t, err)
	require.JSONEq(t, `{"height":"Infinity","antennaGain":"NaN","latitude":"-Infinity","longitude":-122.08}`, string(raw))

	var again SasPortalInstallationParams
	require.NoError(t, json.Unmarshal(raw, &again))
	require.True(t, math.IsInf(again.Height, 1))
	require.True(t, math.IsNaN(again.AntennaGain))
	require.True(t, math.IsInf(again.Latitude, -1))
	require.Equal(t, -122.08, again.Longitude)

	cfg := &SasPortalDeviceConfig{InstallationParams: &again}
	raw, err = json.Marshal(cfg)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"antennaGain":"NaN"`)
}

func TestDeviceRoundTrip(t *testing.T) {
	for _, ts := range []time.Time{
		time.Unix(0, 0).UTC(),
		time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		in := &SasPortalDevice{
			Name:         "customers/c/devices/d",
			FccId:        "FCC1",
			SerialNumber: "SN-0",
			State:        "REGISTERED",
			PreloadedConfig: &SasPortalDeviceConfig{
				Category:     "DEVICE_CATEGORY_A",
				UpdateTime:   ts,
				Model:        &SasPortalDeviceModel{Vendor: "v", Name: "m"},
				AirInterface: &SasPortalDeviceAirInterface{RadioTechnology: "NR"},
				InstallationParams: &SasPortalInstallationParams{
					Latitude:        -33.5,
					Longitude:       151.25,
					AntennaDowntilt: -3,
					EirpCapability:  0,
					Height:          12,
					HeightType:      "HEIGHT_TYPE_AGL",
				},
			},
			Grants: []*SasPortalDeviceGrant{{
				GrantId:        "g1",
				MaxEirp:        -1.5,
				ExpireTime:     ts,
				FrequencyRange: &SasPortalFrequencyRange{LowFrequencyMhz: 3550, HighFrequencyMhz: 3560},
			}},
			CurrentChannels: []*SasPortalChannelWithScore{{Score: 99.5}},
		}
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		out := new(SasPortalDevice)
		require.NoError(t, json.Unmarshal(raw, out))
		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip at %v mismatch (-want +got):\n%s", ts, diff)
		}
	}
}
