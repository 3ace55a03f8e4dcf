// Package docs holds the Swagger spec served under /swagger.
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
		"/profiles": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"profiles"
				],
				"summary": "Select the investor type",
				"parameters": [
					{
						"description": "Investor type",
						"name": "profile",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SelectInvestorTypeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProfileResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/profiles/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"profiles"
				],
				"summary": "Get the caller's investor profile",
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProfileResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				}
			}
		},
		"/profiles/{profileID}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"profiles"
				],
				"summary": "Get an investor profile",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProfileResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				}
			}
		},
		"/profiles/{profileID}/accreditation-status": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"profiles"
				],
				"summary": "Update the profile-level accreditation claim",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					},
					{
						"description": "Accreditation claim",
						"name": "status",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateAccreditationStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProfileResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/profiles/{profileID}/general-info": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"general-info"
				],
				"summary": "Save general info",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					},
					{
						"description": "General info",
						"name": "generalInfo",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SaveGeneralInfoRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.GeneralInfoResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"general-info"
				],
				"summary": "Get general info with its child records",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.GeneralInfoResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				}
			}
		},
		"/general-info/{generalInfoID}/parties": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"general-info"
				],
				"summary": "Add a joint holder, grantor or equity owner",
				"parameters": [
					{
						"type": "string",
						"description": "Generalinfo id",
						"name": "generalInfoID",
						"in": "path",
						"required": true
					},
					{
						"description": "Child record",
						"name": "party",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AddPartyRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.PartyResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/profiles/{profileID}/beneficiaries": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"beneficiaries"
				],
				"summary": "List beneficiaries grouped by type",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BeneficiaryAllocationResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"beneficiaries"
				],
				"summary": "Add a beneficiary",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					},
					{
						"description": "Beneficiary",
						"name": "beneficiary",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BeneficiaryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BeneficiaryResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"beneficiaries"
				],
				"summary": "Replace beneficiaries by type",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					},
					{
						"description": "Replacement batch",
						"name": "batch",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ReplaceBeneficiariesRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.BeneficiaryResponse"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/beneficiaries/{beneficiaryID}": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"beneficiaries"
				],
				"summary": "Update a beneficiary",
				"parameters": [
					{
						"type": "string",
						"description": "Beneficiary id",
						"name": "beneficiaryID",
						"in": "path",
						"required": true
					},
					{
						"description": "Beneficiary",
						"name": "beneficiary",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateBeneficiaryRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BeneficiaryResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"beneficiaries"
				],
				"summary": "Delete a beneficiary",
				"parameters": [
					{
						"type": "string",
						"description": "Beneficiary id",
						"name": "beneficiaryID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				}
			}
		},
		"/profiles/{profileID}/accreditation": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accreditation"
				],
				"summary": "Submit or resubmit an accreditation",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					},
					{
						"description": "Accreditation",
						"name": "accreditation",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SaveAccreditationRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.AccreditationResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accreditation"
				],
				"summary": "Get a profile's accreditation with its documents",
				"parameters": [
					{
						"type": "string",
						"description": "Profile id",
						"name": "profileID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.AccreditationResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				}
			}
		},
		"/accreditations/{accreditationID}/documents": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accreditation"
				],
				"summary": "Record a supporting document",
				"parameters": [
					{
						"type": "string",
						"description": "Accreditation id",
						"name": "accreditationID",
						"in": "path",
						"required": true
					},
					{
						"description": "Document metadata",
						"name": "document",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UploadDocumentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.AccreditationDocumentResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/accreditations/{accreditationID}/verify": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accreditation"
				],
				"summary": "Verify or reject an accreditation",
				"parameters": [
					{
						"type": "string",
						"description": "Accreditation id",
						"name": "accreditationID",
						"in": "path",
						"required": true
					},
					{
						"description": "Review decision",
						"name": "decision",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.VerifyAccreditationRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.AccreditationResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"403": {
						"description": "Caller may not review accreditations",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/accreditation-documents/{documentID}": {
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accreditation"
				],
				"summary": "Delete a supporting document record",
				"parameters": [
					{
						"type": "string",
						"description": "Document id",
						"name": "documentID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Envelope"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.AccreditationDocumentResponse": {
			"type": "object",
			"properties": {
				"documentID": {
					"type": "string"
				},
				"accreditationID": {
					"type": "string"
				},
				"documentType": {
					"type": "string"
				},
				"storagePath": {
					"type": "string"
				},
				"fileSize": {
					"type": "integer"
				},
				"contentType": {
					"type": "string"
				},
				"uploadDate": {
					"type": "string"
				}
			}
		},
		"dto.AccreditationResponse": {
			"type": "object",
			"properties": {
				"accreditationID": {
					"type": "string"
				},
				"profileID": {
					"type": "string"
				},
				"accreditationType": {
					"type": "integer"
				},
				"accreditationName": {
					"type": "string"
				},
				"licenseNumber": {
					"type": "string"
				},
				"stateLicenseHeld": {
					"type": "string"
				},
				"reviewStatus": {
					"type": "string"
				},
				"isVerified": {
					"type": "boolean"
				},
				"verificationDate": {
					"type": "string"
				},
				"verifiedBy": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"documents": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AccreditationDocumentResponse"
					}
				},
				"createdAt": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string"
				}
			}
		},
		"dto.AddPartyRequest": {
			"type": "object",
			"required": [
				"attributes"
			],
			"properties": {
				"orderIndex": {
					"type": "integer"
				},
				"attributes": {
					"type": "object"
				}
			}
		},
		"dto.BeneficiaryAllocationResponse": {
			"type": "object",
			"properties": {
				"primary": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.BeneficiaryResponse"
					}
				},
				"primaryTotal": {
					"type": "string"
				},
				"contingent": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.BeneficiaryResponse"
					}
				},
				"contingentTotal": {
					"type": "string"
				},
				"isComplete": {
					"type": "boolean"
				}
			}
		},
		"dto.BeneficiaryRequest": {
			"type": "object",
			"properties": {
				"beneficiaryType": {
					"type": "string"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"relationship": {
					"type": "string"
				},
				"dateOfBirth": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"percentageOfBenefit": {
					"type": "string",
					"example": "50.00"
				}
			},
			"required": [
				"beneficiaryType",
				"firstName",
				"lastName",
				"relationship"
			]
		},
		"dto.BeneficiaryResponse": {
			"type": "object",
			"properties": {
				"beneficiaryID": {
					"type": "string"
				},
				"profileID": {
					"type": "string"
				},
				"beneficiaryType": {
					"type": "string"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"relationship": {
					"type": "string"
				},
				"dateOfBirth": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"percentageOfBenefit": {
					"type": "string",
					"example": "50.00"
				},
				"createdAt": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string"
				}
			}
		},
		"dto.Envelope": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"statusCode": {
					"type": "integer"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"dto.GeneralInfoResponse": {
			"type": "object",
			"properties": {
				"generalInfoID": {
					"type": "string"
				},
				"detailID": {
					"type": "string"
				},
				"profileID": {
					"type": "string"
				},
				"investorType": {
					"type": "string"
				},
				"attributes": {
					"type": "object"
				},
				"parties": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.PartyResponse"
					}
				},
				"createdAt": {
					"type": "string"
				},
				"createdBy": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string"
				},
				"lastUpdatedBy": {
					"type": "string"
				}
			}
		},
		"dto.PartyResponse": {
			"type": "object",
			"properties": {
				"partyID": {
					"type": "string"
				},
				"generalInfoID": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				},
				"orderIndex": {
					"type": "integer"
				},
				"attributes": {
					"type": "object"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"dto.ProfileResponse": {
			"type": "object",
			"properties": {
				"profileID": {
					"type": "string"
				},
				"userID": {
					"type": "string"
				},
				"investorType": {
					"type": "string"
				},
				"isAccredited": {
					"type": "boolean"
				},
				"accreditationType": {
					"type": "integer"
				},
				"completionPercentage": {
					"type": "integer"
				},
				"isActive": {
					"type": "boolean"
				},
				"detail": {
					"$ref": "#/definitions/dto.TypeSpecificDetailResponse"
				},
				"createdAt": {
					"type": "string"
				},
				"createdBy": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string"
				},
				"lastUpdatedBy": {
					"type": "string"
				}
			}
		},
		"dto.ReplaceBeneficiariesRequest": {
			"type": "object",
			"required": [
				"beneficiaries"
			],
			"properties": {
				"beneficiaries": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.BeneficiaryRequest"
					}
				}
			}
		},
		"dto.SaveAccreditationRequest": {
			"type": "object",
			"properties": {
				"accreditationType": {
					"type": "integer",
					"example": 3
				},
				"licenseNumber": {
					"type": "string"
				},
				"stateLicenseHeld": {
					"type": "string"
				}
			}
		},
		"dto.SaveGeneralInfoRequest": {
			"type": "object",
			"required": [
				"attributes"
			],
			"properties": {
				"attributes": {
					"type": "object"
				}
			}
		},
		"dto.SelectInvestorTypeRequest": {
			"type": "object",
			"required": [
				"investorType"
			],
			"properties": {
				"investorType": {
					"type": "string",
					"enum": [
						"INDIVIDUAL",
						"JOINT",
						"IRA",
						"TRUST",
						"ENTITY"
					]
				},
				"isAccredited": {
					"type": "boolean"
				},
				"accreditationType": {
					"type": "integer"
				},
				"details": {
					"type": "object"
				}
			}
		},
		"dto.TypeSpecificDetailResponse": {
			"type": "object",
			"properties": {
				"detailID": {
					"type": "string"
				},
				"investorType": {
					"type": "string"
				},
				"attributes": {
					"type": "object"
				}
			}
		},
		"dto.UpdateAccreditationStatusRequest": {
			"type": "object",
			"required": [
				"isAccredited"
			],
			"properties": {
				"isAccredited": {
					"type": "boolean"
				},
				"accreditationType": {
					"type": "integer"
				}
			}
		},
		"dto.UpdateBeneficiaryRequest": {
			"type": "object",
			"required": [
				"firstName",
				"lastName",
				"relationship"
			],
			"properties": {
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"relationship": {
					"type": "string"
				},
				"dateOfBirth": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"percentageOfBenefit": {
					"type": "string",
					"example": "50.00"
				}
			}
		},
		"dto.UploadDocumentRequest": {
			"type": "object",
			"required": [
				"contentType",
				"documentType",
				"fileSize",
				"storagePath"
			],
			"properties": {
				"documentType": {
					"type": "string"
				},
				"storagePath": {
					"type": "string"
				},
				"fileSize": {
					"type": "integer"
				},
				"contentType": {
					"type": "string"
				}
			}
		},
		"dto.VerifyAccreditationRequest": {
			"type": "object",
			"required": [
				"approved"
			],
			"properties": {
				"approved": {
					"type": "boolean"
				},
				"notes": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	},
	"security": [
		{
			"BearerAuth": []
		}
	]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Investor Onboarding API",
	Description:      "Onboarding backend for investor profiles, general info, beneficiaries and accreditation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
