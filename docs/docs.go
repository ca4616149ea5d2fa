package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Advocacy Case Registry",
    "description": "API for tracking AI ethics and human rights advocacy cases",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/api/schema": {"get": {"tags": ["schema"], "summary": "Active schema and catalog", "responses": {"200": {"description": "OK"}}}},
    "/api/cases": {
      "get": {"tags": ["cases"], "summary": "List cases", "parameters": [
        {"name": "priority", "in": "query", "type": "string"},
        {"name": "status", "in": "query", "type": "string"},
        {"name": "category", "in": "query", "type": "string"},
        {"name": "platform", "in": "query", "type": "string"},
        {"name": "title", "in": "query", "type": "string"},
        {"name": "assigned_to", "in": "query", "type": "string"}
      ], "responses": {"200": {"description": "OK"}}},
      "post": {"tags": ["cases"], "summary": "Create case", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}}}
    },
    "/api/cases/{id}": {"get": {"tags": ["cases"], "summary": "Case details", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
    "/api/cases/{id}/status": {"post": {"tags": ["cases"], "summary": "Update case status", "responses": {"200": {"description": "OK"}, "422": {"description": "Invalid transition"}}}},
    "/api/cases/{id}/assign": {"post": {"tags": ["cases"], "summary": "Assign case", "responses": {"200": {"description": "OK"}}}},
    "/api/cases/{id}/auto-assign": {"post": {"tags": ["cases"], "summary": "Auto-assign case", "responses": {"200": {"description": "OK"}}}},
    "/api/cases/{id}/resolution": {"post": {"tags": ["cases"], "summary": "Record resolution", "responses": {"200": {"description": "OK"}}}},
    "/api/cases/{id}/actions": {"post": {"tags": ["cases"], "summary": "Append advocacy action", "responses": {"201": {"description": "Created"}}}},
    "/api/cases/{id}/chat": {
      "get": {"tags": ["chat"], "summary": "Chat history", "responses": {"200": {"description": "OK"}}},
      "post": {"tags": ["chat"], "summary": "Chat about a case", "responses": {"200": {"description": "OK"}, "429": {"description": "Rate limited"}, "502": {"description": "Upstream failure"}}}
    },
    "/api/cases/{id}/progress": {"get": {"tags": ["cases"], "summary": "Resolution progress", "responses": {"200": {"description": "OK"}}}},
    "/api/analytics": {"get": {"tags": ["analytics"], "summary": "Analytics summary", "responses": {"200": {"description": "OK"}}}},
    "/api/analytics/{metric}": {"get": {"tags": ["analytics"], "summary": "Single registry metric", "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown metric"}}}},
    "/api/generate": {"post": {"tags": ["admin"], "summary": "Generate a test case", "responses": {"201": {"description": "Created"}}}},
    "/api/stream": {"post": {"tags": ["admin"], "summary": "Simulate a live case stream", "parameters": [
      {"name": "count", "in": "query", "type": "integer"}
    ], "responses": {"200": {"description": "OK"}, "504": {"description": "Stream stopped by request timeout"}}}}
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
