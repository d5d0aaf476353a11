package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecoach/backend/tools"
)

type echoTool struct{}

func (echoTool) Name() string        { return "echo" }
func (echoTool) Description() string { return "Echo the input" }
func (echoTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (echoTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in map[string]string
	if err := json.Unmarshal(input, &in); err != nil {
		return tools.NewErrorResult("invalid input")
	}
	if in["fail"] != "" {
		return nil, errors.New(in["fail"])
	}
	return tools.NewSuccessResult(in)
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := tools.NewToolRegistry()
	registry.Register(echoTool{})
	registry.Register(tools.NewExtractSectionsTool())

	router := gin.New()
	NewServer(registry, "resumecoach", "test").RegisterRoutes(router.Group("/api"))
	return router
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func rpc(t *testing.T, router http.Handler, body string) MCPResponse {
	t.Helper()
	w := post(t, router, "/api/mcp", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2.0", resp.JSONRPC)
	return resp
}

func resultAs(t *testing.T, resp MCPResponse, v interface{}) {
	t.Helper()
	require.Nil(t, resp.Error)
	data, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestHandleMCP_Initialize(t *testing.T) {
	resp := rpc(t, newRouter(), `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)

	var result InitializeResult
	resultAs(t, resp, &result)
	assert.Equal(t, ProtocolVersion, result.ProtocolVersion)
	assert.Equal(t, "resumecoach", result.ServerInfo.Name)
	assert.Contains(t, result.Capabilities, "tools")
}

func TestHandleMCP_ToolsList(t *testing.T) {
	resp := rpc(t, newRouter(), `{"jsonrpc":"2.0","id":"a","method":"tools/list"}`)

	var result ToolsListResult
	resultAs(t, resp, &result)
	require.Len(t, result.Tools, 2)
	assert.Equal(t, "echo", result.Tools[0].Name)
	assert.Equal(t, "extract_sections", result.Tools[1].Name)
}

func TestHandleMCP_ToolsCall(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name    string
		params  string
		isError bool
		text    string
	}{
		{"success", `{"name":"echo","arguments":{"msg":"hi"}}`, false, `"msg":"hi"`},
		{"tool reports failure", `{"name":"echo","arguments":"oops"}`, true, "invalid input"},
		{"tool returns error", `{"name":"echo","arguments":{"fail":"boom"}}`, true, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := rpc(t, router, `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":`+tt.params+`}`)

			var result ToolCallResult
			resultAs(t, resp, &result)
			assert.Equal(t, tt.isError, result.IsError)
			require.Len(t, result.Content, 1)
			assert.Equal(t, "text", result.Content[0].Type)
			assert.Contains(t, result.Content[0].Text, tt.text)
		})
	}
}

func TestHandleMCP_Errors(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"parse error", `{not json`, CodeParseError},
		{"unknown method", `{"jsonrpc":"2.0","id":1,"method":"resources/list"}`, CodeMethodNotFound},
		{"bad params", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":"x"}`, CodeInvalidParams},
		{"unknown tool", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"nope"}}`, CodeInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := rpc(t, router, tt.body)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestRESTEndpoints(t *testing.T) {
	router := newRouter()

	w := post(t, router, "/api/mcp/tools/list", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inputSchema"`)

	w = post(t, router, "/api/mcp/tools/call", `{"name":"extract_sections","arguments":{"text":"Skills\nGo"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var result ToolCallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.IsError)

	w = post(t, router, "/api/mcp/tools/call", `{"name":"missing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = post(t, router, "/api/mcp/tools/call", `nope`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
