// Package docs holds the swagger document served at /swagger in local mode.
// It follows swag's output layout but is maintained alongside the godoc
// annotations on the controllers; run `swag init` after changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/aggregate": {
            "get": {
                "description": "Counts selections per gift and lists the current gift per employee",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "selections"
                ],
                "summary": "Aggregate selections",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.AggregateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.HealthResponse"
                        }
                    }
                }
            }
        },
        "/api/select-gift": {
            "post": {
                "description": "Stores the employee's gift choice, replacing any earlier choice by the same employee",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "selections"
                ],
                "summary": "Select a gift",
                "parameters": [
                    {
                        "description": "Gift selection",
                        "name": "selection",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SelectGiftRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SelectGiftResponse"
                        }
                    },
                    "400": {
                        "description": "Missing required field",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Unexpected internal error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/selections": {
            "get": {
                "description": "Returns every stored selection in store order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "selections"
                ],
                "summary": "List all selections",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SelectionsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.AggregateResponse": {
            "type": "object",
            "properties": {
                "employeeSelections": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/storage.EmployeeSelection"
                    }
                },
                "giftCounts": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/storage.GiftCount"
                    }
                },
                "selections": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "success": {
                    "type": "boolean"
                },
                "totalSelections": {
                    "type": "integer"
                },
                "uniqueEmployees": {
                    "type": "integer"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "models.SelectGiftRequest": {
            "type": "object",
            "properties": {
                "employeeId": {
                    "type": "string",
                    "example": "E1"
                },
                "giftId": {
                    "type": "string",
                    "example": "G1"
                },
                "giftName": {
                    "type": "string",
                    "example": "Watch"
                },
                "giftPrice": {
                    "type": "string",
                    "example": "$99"
                },
                "selectionTime": {
                    "type": "string",
                    "example": "2024-12-15T10:30:00.000Z"
                }
            }
        },
        "models.SelectGiftResponse": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string",
                    "enum": [
                        "created",
                        "updated"
                    ]
                },
                "message": {
                    "type": "string"
                },
                "selectionId": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "models.SelectionsResponse": {
            "type": "object",
            "properties": {
                "selections": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "success": {
                    "type": "boolean"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "storage.EmployeeSelection": {
            "type": "object",
            "properties": {
                "giftId": {
                    "type": "string"
                },
                "giftName": {
                    "type": "string"
                },
                "selectedAt": {
                    "type": "string"
                }
            }
        },
        "storage.GiftCount": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "employees": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "giftName": {
                    "type": "string"
                },
                "giftPrice": {
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
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Gift Selection API",
	Description:      "Stores one holiday gift choice per employee and serves aggregate counts",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
