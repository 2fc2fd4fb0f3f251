package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ACC/ACEX Analyzer API",
        "description": "Checks complementary and extension activity hours against Resolução CONSEPE Nº 008/2024.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Analyses", "description": "ACC diversity and ACEX requirement checks"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/natures": {
            "get": {
                "tags": ["Analyses"],
                "summary": "List activity natures",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/analyses": {
            "post": {
                "tags": ["Analyses"],
                "summary": "Analyze ACC and ACEX requirements",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/analyses/export": {
            "post": {
                "tags": ["Analyses"],
                "summary": "Download the analysis as CSV or PDF",
                "produces": ["application/pdf", "text/csv"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Document", "schema": {"type": "file"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Exports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ACCHours": {
            "type": "object",
            "properties": {
                "teaching": {"type": "integer", "minimum": 0},
                "research": {"type": "integer", "minimum": 0},
                "extension": {"type": "integer", "minimum": 0},
                "artAndCulture": {"type": "integer", "minimum": 0},
                "universityAdministration": {"type": "integer", "minimum": 0},
                "interdisciplinary": {"type": "integer", "minimum": 0}
            }
        },
        "AnalyzeRequest": {
            "type": "object",
            "required": ["entryYear", "entryTerm"],
            "properties": {
                "entryYear": {"type": "integer", "example": 2024},
                "entryTerm": {"type": "integer", "enum": [1, 2]},
                "hours": {"$ref": "#/definitions/ACCHours"},
                "extensionHours": {"type": "integer", "minimum": 0}
            }
        },
        "Finding": {
            "type": "object",
            "properties": {
                "severity": {"type": "string", "enum": ["header", "info", "success", "warning"]},
                "message": {"type": "string"}
            }
        },
        "AnalysisResponse": {
            "type": "object",
            "properties": {
                "entrySemester": {"type": "string", "example": "2024.1"},
                "findings": {"type": "array", "items": {"$ref": "#/definitions/Finding"}},
                "summary": {
                    "type": "object",
                    "properties": {
                        "cappedHours": {"type": "object", "additionalProperties": {"type": "integer"}},
                        "qualifyingNatures": {"type": "array", "items": {"type": "string"}},
                        "diversityMet": {"type": "boolean"},
                        "acex": {"type": "string", "enum": ["met", "pending", "not_required"]}
                    }
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "field": {"type": "string"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
