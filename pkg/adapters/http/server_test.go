package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticekit/lattice"
	httpAdapter "github.com/latticekit/lattice/pkg/adapters/http"
	"github.com/latticekit/lattice/pkg/counter"
)

func newTestServer(t *testing.T) (*httptest.Server, *counter.Instance) {
	t.Helper()

	store := lattice.New()
	inst := counter.At("counter-a")
	store.Mount(inst.ID, inst.Lens, inst.SliceReducer())

	server := httpAdapter.NewServer(store)
	server.RegisterInstance(inst.ID, inst.Selectors)

	ts := httptest.NewServer(httpAdapter.NewHandler(server))
	t.Cleanup(ts.Close)
	return ts, inst
}

func TestServer_Health(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_DispatchAndView(t *testing.T) {
	ts, inst := newTestServer(t)

	body := `{"type":"INCREMENT","meta":{"instanceId":"counter-a"}}`
	resp, err := http.Post(ts.URL+"/dispatch", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/instances/" + inst.ID)
	require.NoError(t, err)
	defer resp.Body.Close()

	var view map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, float64(1), view["count"])
	assert.Equal(t, "green", view["color"])
	assert.Equal(t, false, view["disabled"])
}

func TestServer_DispatchUntaggedActionIsIgnored(t *testing.T) {
	ts, inst := newTestServer(t)

	// No meta.instanceId: the guard fails closed, state is unchanged,
	// and the request still succeeds.
	resp, err := http.Post(ts.URL+"/dispatch", "application/json",
		strings.NewReader(`{"type":"INCREMENT"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/instances/" + inst.ID)
	require.NoError(t, err)
	defer resp.Body.Close()

	var view map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, float64(0), view["count"])
}

func TestServer_DispatchRejectsMalformedBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/dispatch", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/dispatch", "application/json", strings.NewReader(`{"payload":1}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_UnknownInstance(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/instances/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ListInstances(t *testing.T) {
	ts, inst := newTestServer(t)

	resp, err := http.Get(ts.URL + "/instances")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Instances []string `json:"instances"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{inst.ID}, body.Instances)
}
