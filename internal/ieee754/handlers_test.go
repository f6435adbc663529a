package ieee754_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"numsys-api/internal/ieee754"
	"numsys-api/internal/observability"
)

func newIEEERouter(t *testing.T) http.Handler {
	t.Helper()
	observability.Logger = zap.NewNop()
	require.NoError(t, ieee754.InitMetrics())

	r := chi.NewRouter()
	ieee754.RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, h http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestEncodeEndpointSinglePrecision(t *testing.T) {
	router := newIEEERouter(t)

	rr := postJSON(t, router, "/ieee754/encode", ieee754.EncodeRequest{
		Value: "1.0", Format: "single",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ieee754.EncodeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	zeros := strings.Repeat("0", 23)
	assert.Equal(t, "single", resp.Format)
	assert.Equal(t, "1", resp.Value)
	assert.Equal(t, 0, resp.SignBit)
	assert.Equal(t, "01111111", resp.ExponentBits)
	assert.Equal(t, zeros, resp.MantissaBits)
	assert.Equal(t, 127, resp.BiasedExponent)
	assert.Equal(t, 0, resp.UnbiasedExponent)
	assert.Equal(t, "3F800000", resp.Hex)
	assert.Equal(t, "(-1)^0 × 1."+zeros+" × 2^(127 - 127)", resp.Formula)
}

func TestEncodeEndpointDoublePrecision(t *testing.T) {
	router := newIEEERouter(t)

	rr := postJSON(t, router, "/ieee754/encode", ieee754.EncodeRequest{
		Value: "0.1", Format: "double",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ieee754.EncodeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "3FB999999999999A", resp.Hex)
	assert.Equal(t, -4, resp.UnbiasedExponent)
	assert.Equal(t, "0.1", resp.Value)
}

func TestEncodeEndpointSurvivesInfinity(t *testing.T) {
	router := newIEEERouter(t)

	rr := postJSON(t, router, "/ieee754/encode", ieee754.EncodeRequest{
		Value: "inf", Format: "single",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ieee754.EncodeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "+Inf", resp.Value)
	assert.Equal(t, "7F800000", resp.Hex)
}

func TestEncodeEndpointRejectsBadInput(t *testing.T) {
	router := newIEEERouter(t)

	rr := postJSON(t, router, "/ieee754/encode", ieee754.EncodeRequest{
		Value: "1.0", Format: "half",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postJSON(t, router, "/ieee754/encode", ieee754.EncodeRequest{
		Value: "not-a-number", Format: "double",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "not a floating-point literal")
}

func TestDecodeEndpointRebuildsValue(t *testing.T) {
	router := newIEEERouter(t)

	rr := postJSON(t, router, "/ieee754/decode", ieee754.DecodeRequest{
		Format:       "single",
		SignBit:      1,
		ExponentBits: "10000000",
		MantissaBits: "01000000000000000000000",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ieee754.DecodeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "single", resp.Format)
	assert.Equal(t, "-2.5", resp.Value)
}

func TestDecodeEndpointRejectsMalformedFields(t *testing.T) {
	router := newIEEERouter(t)

	rr := postJSON(t, router, "/ieee754/decode", ieee754.DecodeRequest{
		Format:       "single",
		SignBit:      0,
		ExponentBits: "0111",
		MantissaBits: strings.Repeat("0", 23),
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "exponent field must be 8 bits")
}
