// Package docs holds the swagger description of the decompound API. Keep it
// in step with the route annotations in services/decompound/http
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{.Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "consumes": [
        "application/json"
    ],
    "produces": [
        "application/json"
    ],
    "paths": {
        "/v1/decompound": {
            "post": {
                "tags": [
                    "Decompound"
                ],
                "summary": "Split one compound word",
                "operationId": "decompoundOne",
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "description": "Word and options",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.Request"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/phttp.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.Result"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "validation or json",
                        "schema": {
                            "$ref": "#/definitions/phttp.Envelope"
                        }
                    },
                    "413": {
                        "description": "word too long",
                        "schema": {
                            "$ref": "#/definitions/phttp.Envelope"
                        }
                    },
                    "422": {
                        "description": "strict single_word or no_decomposition",
                        "schema": {
                            "$ref": "#/definitions/phttp.Envelope"
                        }
                    },
                    "503": {
                        "description": "lexicon backend unavailable",
                        "schema": {
                            "$ref": "#/definitions/phttp.Envelope"
                        }
                    }
                }
            }
        },
        "/v1/decompound/batch": {
            "post": {
                "tags": [
                    "Decompound"
                ],
                "summary": "Split many words with shared options",
                "operationId": "decompoundBatch",
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "description": "Words and options",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.BatchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "results in request order",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/phttp.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.BatchResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "validation or json",
                        "schema": {
                            "$ref": "#/definitions/phttp.Envelope"
                        }
                    },
                    "413": {
                        "description": "batch too large",
                        "schema": {
                            "$ref": "#/definitions/phttp.Envelope"
                        }
                    },
                    "503": {
                        "description": "lexicon backend unavailable",
                        "schema": {
                            "$ref": "#/definitions/phttp.Envelope"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Liveness with build and lexicon info",
                "operationId": "healthz",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/phttp.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/http.HealthResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Readiness of the lexicon backend",
                "operationId": "readyz",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/http.ReadyResponse"
                        }
                    },
                    "503": {
                        "description": "postgres unreachable",
                        "schema": {
                            "$ref": "#/definitions/http.ReadyResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Request": {
            "type": "object",
            "required": [
                "word"
            ],
            "properties": {
                "word": {
                    "type": "string",
                    "maxLength": 256
                },
                "options": {
                    "type": "array",
                    "maxItems": 3,
                    "items": {
                        "type": "string",
                        "enum": [
                            "try-titlecase-suffix",
                            "split-hyphenated",
                            "shatter"
                        ]
                    }
                },
                "strict": {
                    "type": "boolean"
                }
            }
        },
        "domain.BatchRequest": {
            "type": "object",
            "required": [
                "words"
            ],
            "properties": {
                "words": {
                    "type": "array",
                    "minItems": 1,
                    "items": {
                        "type": "string"
                    }
                },
                "options": {
                    "type": "array",
                    "maxItems": 3,
                    "items": {
                        "type": "string",
                        "enum": [
                            "try-titlecase-suffix",
                            "split-hyphenated",
                            "shatter"
                        ]
                    }
                }
            }
        },
        "domain.Result": {
            "type": "object",
            "properties": {
                "word": {
                    "type": "string"
                },
                "outcome": {
                    "type": "string",
                    "enum": [
                        "split",
                        "single_word",
                        "none",
                        "error"
                    ]
                },
                "constituents": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "lookups": {
                    "type": "integer"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "domain.BatchResult": {
            "type": "object",
            "properties": {
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Result"
                    }
                }
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                },
                "service": {
                    "type": "string"
                },
                "lexicon": {
                    "type": "string"
                },
                "words": {
                    "type": "integer"
                },
                "started": {
                    "type": "string",
                    "format": "date-time"
                },
                "uptime": {
                    "type": "integer"
                },
                "build": {
                    "$ref": "#/definitions/version.BuildInfo"
                }
            }
        },
        "http.ReadyCheck": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "ok",
                        "fail",
                        "skipped"
                    ]
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "http.ReadyResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "checks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.ReadyCheck"
                    }
                }
            }
        },
        "phttp.Envelope": {
            "type": "object",
            "properties": {
                "status_code": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                },
                "data": {}
            }
        },
        "version.BuildInfo": {
            "type": "object",
            "properties": {
                "service": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "commit": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "decompound API",
	Description:      "Splits compound words into their constituents against a lexicon.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
