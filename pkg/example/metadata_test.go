package example

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lockstate/rspec-api-documentation/pkg/recording"
	"github.com/stretchr/testify/assert"
)

func TestMetadata(t *testing.T) {
	raw := &recording.Example{
		Description:  "Create Widget",
		ResourceName: "Widgets",
		HTTPMethod:   "POST",
		Route:        "/widgets",
		Public:       true,
		Document:     recording.Enabled("public_api"),
		Parameters: []recording.Parameter{
			{Name: "name", Scope: "widget", Description: "Name", Required: true},
		},
		Requests: []recording.Request{{
			Method:          "POST",
			Path:            "/widgets",
			Headers:         map[string]string{"Content-Type": "application/json", "Accept": "*/*"},
			Body:            `{"name":"gear"}`,
			ContentType:     "application/json",
			QueryParameters: map[string]string{"dry": "1"},
			ResponseStatus:  201,
		}},
	}

	md := New(raw, WithAPIName("Widgets API")).Metadata()

	assert.Equal(t, "Widgets API", md["api_name"])
	assert.Equal(t, "widgets", md["dirname"])
	assert.Equal(t, "create_widget", md["filename"])
	assert.Equal(t, true, md["public"])
	assert.Equal(t, []string{"public_api"}, md["tags"])

	params := md["parameters"].([]map[string]interface{})
	assert.Equal(t, "widget[name]", params[0]["full_name"])
	assert.Empty(t, md["response_fields"])

	req := md["requests"].([]map[string]interface{})[0]
	want := []map[string]string{
		{"name": "Accept", "value": "*/*"},
		{"name": "Content-Type", "value": "application/json"},
	}
	if diff := cmp.Diff(want, req["request_headers"]); diff != "" {
		t.Errorf("request_headers mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "{\n  \"name\": \"gear\"\n}", req["request_body"])
	assert.Equal(t, []map[string]string{}, req["response_headers"])
	assert.Equal(t, "", req["response_body"])
}

func TestFormatBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{"json", `{"a":[1,2]}`, "application/json; charset=utf-8", "{\n  \"a\": [\n    1,\n    2\n  ]\n}"},
		{"vendor json", `{"a":1}`, "application/vnd.api+json", "{\n  \"a\": 1\n}"},
		{"invalid json", `{"a":`, "application/json", `{"a":`},
		{"xml", "<a><b>1</b></a>", "application/xml", "<a>\n  <b>1</b>\n</a>"},
		{"invalid xml", "<a><b></a>", "text/xml", "<a><b></a>"},
		{"plain text", `{"a":1}`, "text/plain", `{"a":1}`},
		{"empty", "", "application/json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBody(tt.body, tt.contentType))
		})
	}
}
