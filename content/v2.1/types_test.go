package content

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestAccountIdRoundTrip(t *testing.T) {
	for _, id := range []uint64{0, 1, 42, math.MaxUint32, math.MaxUint64} {
		in := &Account{
			Id:       id,
			Name:     "acct",
			LabelIds: []uint64{id, 7},
			AdsLinks: []*AccountAdsLink{{AdsId: id, Status: "active"}},
		}
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		out := new(Account)
		require.NoError(t, json.Unmarshal(raw, out))
		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip of %d mismatch (-want +got):\n%s", id, diff)
		}
	}
}

func TestUint64WireForm(t *testing.T) {
	raw, err := json.Marshal(&AccountIdentifier{MerchantId: 42})
	require.NoError(t, err)
	require.JSONEq(t, `{"merchantId":"42"}`, string(raw))

	raw, err = json.Marshal(&Account{LabelIds: []uint64{1, 42}})
	require.NoError(t, err)
	require.JSONEq(t, `{"labelIds":["1","42"]}`, string(raw))

	raw, err = json.Marshal(&AccountIdentifier{ForceSendFields: []string{"MerchantId"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"merchantId":"0"}`, string(raw))
}

func TestProductMultipackRoundTrip(t *testing.T) {
	for _, n := range []int64{0, -1, 1, 42, math.MinInt64, math.MaxInt64} {
		in := &Product{OfferId: "sku", Multipack: n, Sizes: []string{"M"}, Price: &Price{Value: "9.99", Currency: "USD"}}
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		out := new(Product)
		require.NoError(t, json.Unmarshal(raw, out))
		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip of %d mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestAccountNullFields(t *testing.T) {
	raw, err := json.Marshal(&Account{Name: "a", NullFields: []string{"BusinessInformation", "Users"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"a","businessInformation":null,"users":null}`, string(raw))
}
