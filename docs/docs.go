// Package docs holds the Swagger document served under /swagger. It follows
// the layout swag init writes from the handler annotations.
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
        "/api/gas/estimate": {
            "post": {
                "description": "Returns recent blocks, the ETH spot price or the network gas price for the reserved function names getLatestBlocks, getEthPrice and getGasPrice. Otherwise calls a view function or estimates the gas and fee of a state-changing contract call.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gas"
                ],
                "summary": "Estimate gas or read chain data",
                "parameters": [
                    {
                        "description": "Gas estimate request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/requests.GasEstimateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.GasEstimateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns a simple \"ok\" status",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Check the health of the server",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "requests.GasEstimateRequest": {
            "type": "object",
            "required": [
                "functionName"
            ],
            "properties": {
                "abi": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "args": {
                    "type": "array",
                    "items": {}
                },
                "contractAddress": {
                    "type": "string"
                },
                "from": {
                    "type": "string"
                },
                "functionName": {
                    "type": "string"
                }
            }
        },
        "responses.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "responses.GasEstimateResponse": {
            "type": "object",
            "properties": {
                "estimatedFeeInETH": {
                    "type": "string"
                },
                "estimatedGas": {
                    "type": "string"
                },
                "gasPrice": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "result": {}
            }
        },
        "responses.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ethereum Gas Gateway API",
	Description:      "Gas estimates, chain reads and ETH pricing for Ethereum contract calls",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
