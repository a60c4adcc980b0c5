// Package docs registers the OpenAPI document for the bbcenglish api
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/convert": {
      "post": {
        "tags": ["Convert"],
        "summary": "Rewrite American spellings in the comment lines of a document",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ConvertRequest"}}}
        },
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ConvertResponse"}}}},
          "413": {"description": "Request body too large"}
        }
      }
    },
    "/rules": {
      "get": {
        "tags": ["Rules"],
        "summary": "List the expanded rule table in application order",
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/RulesResponse"}}}}
        }
      }
    },
    "/rules/{american}": {
      "get": {
        "tags": ["Rules"],
        "summary": "Look up the rule for one case-sensitive American word",
        "parameters": [{"name": "american", "in": "path", "required": true, "schema": {"type": "string"}, "example": "Color"}],
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Rule"}}}},
          "404": {"description": "No rule for the word"}
        }
      }
    },
    "/meta/health": {"get": {"tags": ["Meta"], "summary": "Liveness", "responses": {"200": {"description": "OK"}}}},
    "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build info", "responses": {"200": {"description": "OK"}}}},
    "/meta/service": {"get": {"tags": ["Meta"], "summary": "Uptime and the loaded rule pack", "responses": {"200": {"description": "OK"}}}}
  },
  "components": {
    "schemas": {
      "ConvertRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"type": "string", "example": "/// Optimize the color\nfn color() {}\n"},
          "path": {"type": "string", "example": "src/lib.rs"}
        }
      },
      "Change": {
        "type": "object",
        "properties": {
          "path": {"type": "string"},
          "line": {"type": "integer"},
          "label": {"type": "string", "example": "-or to -our"},
          "from": {"type": "string", "example": "color"},
          "to": {"type": "string", "example": "colour"},
          "count": {"type": "integer"}
        }
      },
      "ConvertResponse": {
        "type": "object",
        "properties": {
          "text": {"type": "string"},
          "changed": {"type": "boolean"},
          "changes": {"type": "array", "items": {"$ref": "#/components/schemas/Change"}},
          "report": {"type": "array", "items": {"type": "string"}, "example": ["src/lib.rs:1: -or to -our | 'color' → 'colour'"]}
        }
      },
      "Rule": {
        "type": "object",
        "properties": {
          "american": {"type": "string", "example": "color"},
          "british": {"type": "string", "example": "colour"},
          "label": {"type": "string", "example": "-or to -our"},
          "guarded": {"type": "boolean"}
        }
      },
      "RulesResponse": {
        "type": "object",
        "properties": {
          "version": {"type": "integer"},
          "name": {"type": "string"},
          "count": {"type": "integer"},
          "rules": {"type": "array", "items": {"$ref": "#/components/schemas/Rule"}}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api/v1",
	Title:            "bbcenglish API",
	Description:      "Converts American spellings in // comment lines to British English.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
