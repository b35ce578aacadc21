package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/arcadia/internal/config"
	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/loader"
)

var fixedNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 5
	cfg.MockDataSize = config.MockDataSize{SpendData: 60, Suppliers: 8, Contracts: 10, RiskAlerts: 9}
	l := loader.New(cfg, loader.WithClock(func() time.Time { return fixedNow }))
	return New(l, nil, 0)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, s *Server, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func get(t *testing.T, s *Server, target string) (int, envelope) {
	t.Helper()
	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestListDatasets(t *testing.T) {
	s := newTestServer(t)
	status, env := get(t, s, "/api/datasets")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var data struct {
		Source   string        `json:"source"`
		Datasets []DatasetInfo `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, loader.SourceSynthetic, data.Source)
	require.Len(t, data.Datasets, len(dataset.Names()))
	assert.Equal(t, DatasetInfo{Name: dataset.SpendData, Rows: 60}, data.Datasets[0])
}

func TestGetDataset(t *testing.T) {
	s := newTestServer(t)

	t.Run("full table", func(t *testing.T) {
		status, env := get(t, s, "/api/datasets/contracts")
		require.Equal(t, http.StatusOK, status)
		var table dataset.Table
		require.NoError(t, json.Unmarshal(env.Data, &table))
		assert.Equal(t, 10, table.Len())
		assert.Equal(t, dataset.ContractSchema.ColumnNames(), table.ColumnNames())
	})

	t.Run("limit", func(t *testing.T) {
		status, env := get(t, s, "/api/datasets/spend_data?limit=5")
		require.Equal(t, http.StatusOK, status)
		var table dataset.Table
		require.NoError(t, json.Unmarshal(env.Data, &table))
		assert.Equal(t, 5, table.Len())
	})

	t.Run("supplier filter", func(t *testing.T) {
		_, env := get(t, s, "/api/datasets/spend_data")
		var all dataset.Table
		require.NoError(t, json.Unmarshal(env.Data, &all))
		supplier := all.Text(0, "supplier")

		status, env := get(t, s, "/api/datasets/spend_data?supplier="+strings.ReplaceAll(supplier, " ", "%20"))
		require.Equal(t, http.StatusOK, status)
		var table dataset.Table
		require.NoError(t, json.Unmarshal(env.Data, &table))
		require.Greater(t, table.Len(), 0)
		assert.Equal(t, []string{supplier}, table.Distinct("supplier"))
	})

	t.Run("no supplier column", func(t *testing.T) {
		status, env := get(t, s, "/api/datasets/categories?supplier=AECOM")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, env.Success)
	})

	t.Run("unknown", func(t *testing.T) {
		status, env := get(t, s, "/api/datasets/nope")
		assert.Equal(t, http.StatusNotFound, status)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "unknown dataset")
	})
}

func TestImprovementsAndTimeline(t *testing.T) {
	s := newTestServer(t)

	status, env := get(t, s, "/api/improvements?supplier=Turner%20Construction")
	require.Equal(t, http.StatusOK, status)
	var improvements dataset.Table
	require.NoError(t, json.Unmarshal(env.Data, &improvements))
	require.Equal(t, 1, improvements.Len())
	assert.Equal(t, "Schedule Compliance Improvement", improvements.Text(0, "title"))

	status, env = get(t, s, "/api/timeline?supplier=AECOM")
	require.Equal(t, http.StatusOK, status)
	var timeline dataset.Table
	require.NoError(t, json.Unmarshal(env.Data, &timeline))
	require.Greater(t, timeline.Len(), 2)
	assert.Equal(t, []string{"AECOM"}, timeline.Distinct("supplier"))
	assert.Equal(t, "Initial Qualification", timeline.Text(0, "title"))
}

func TestTemplateDownload(t *testing.T) {
	s := newTestServer(t)
	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/templates?type=Spend%20Data", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"), resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(body), "date,"), string(body))

	status, env := get(t, s, "/api/templates?type=Nonsense")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func uploadRequest(t *testing.T, filename, dataType, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("type", dataType))
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	s := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		csv := "date,supplier,category,amount\n2025-01-15,AECOM,Finishes,1200\n"
		resp, body := do(t, s, uploadRequest(t, "spend.csv", "Spend Data", csv))
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var res struct {
			Success       bool   `json:"success"`
			Message       string `json:"message"`
			RowsProcessed int    `json:"rows_processed"`
		}
		require.NoError(t, json.Unmarshal(body, &res))
		assert.True(t, res.Success)
		assert.Equal(t, 1, res.RowsProcessed)
		assert.Equal(t, "Successfully processed 1 rows of Spend Data.", res.Message)
	})

	t.Run("validation failure", func(t *testing.T) {
		csv := "name,supplier,start_date,end_date\nA,AECOM,2024-01-01,2025-01-01\n"
		resp, body := do(t, s, uploadRequest(t, "contracts.csv", "Spend Data", csv))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var res struct {
			Success      bool   `json:"success"`
			Message      string `json:"message"`
			DetectedType string `json:"detected_type"`
		}
		require.NoError(t, json.Unmarshal(body, &res))
		assert.False(t, res.Success)
		assert.Equal(t, "Missing required columns: date, category, amount.", res.Message)
		assert.Equal(t, "Contract Data", res.DetectedType)
	})

	t.Run("missing file", func(t *testing.T) {
		resp, _ := do(t, s, uploadRequest(t, "", "Spend Data", ""))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad type", func(t *testing.T) {
		resp, _ := do(t, s, uploadRequest(t, "spend.csv", "Invoices", "a\n1\n"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	get(t, s, "/api/datasets")

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text := string(body)
	assert.Contains(t, text, "arcadia_http_requests_total")
	assert.Contains(t, text, `path="/api/datasets"`)
	assert.Contains(t, text, "arcadia_data_source_total")
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	status, env := get(t, s, "/nowhere")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}
