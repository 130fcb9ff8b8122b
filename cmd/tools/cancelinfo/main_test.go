package main

import (
	"testing"

	"brokerclient/internal/adapter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndicator(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected int32
		hasErr   bool
	}{
		{"empty", "", adapter.UnsetInt, false},
		{"blank", "  ", adapter.UnsetInt, false},
		{"zero", "0", 0, false},
		{"one", "1", 1, false},
		{"negative", "-3", -3, false},
		{"sentinel", "2147483647", adapter.UnsetInt, false},
		{"overflow", "2147483648", 0, true},
		{"not a number", "yes", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			v, err := parseIndicator(tc.input)
			if tc.hasErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestBuildRequest(t *testing.T) {
	opts, err := parseOptions([]string{
		"-order-id", "42",
		"-cancel-time", "2024-01-01T10:00:00",
		"-ext-operator", "OP1",
		"-external-user-id", "U123",
		"-indicator", "1",
	})
	require.NoError(t, err)

	req, err := buildRequest(opts)
	require.NoError(t, err)

	expected := adapter.NewCancelRequest(42, adapter.NewOrderCancelWith("2024-01-01T10:00:00", "OP1", "U123", 1))
	assert.True(t, req.Equal(expected))

	opts.Indicator = "x"
	_, err = buildRequest(opts)
	assert.Error(t, err)
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil)
	require.NoError(t, err)

	req, err := buildRequest(opts)
	require.NoError(t, err)
	assert.False(t, req.HasManualMetadata())

	_, err = parseOptions([]string{"-unknown"})
	assert.Error(t, err)
}

func TestRenderJSON(t *testing.T) {
	payload, err := renderJSON(adapter.NewCancelRequest(7, adapter.NewOrderCancelAt("t")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":7,"manualOrderCancelTime":"t","extOperator":"","externalUserId":"","manualOrderIndicator":null}`, string(payload))

	payload, err = renderJSON(adapter.NewCancelRequest(7, adapter.NewOrderCancelWith("t", "op", "u", 0)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":7,"manualOrderCancelTime":"t","extOperator":"op","externalUserId":"u","manualOrderIndicator":0}`, string(payload))
}
