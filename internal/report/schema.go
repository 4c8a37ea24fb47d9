package report

import (
	"encoding/json"
	"fmt"

	"github.com/abarros/arc-assessment/internal/schemas"
)

// PayloadSchema is the JSON Schema for the renderer contract. Render payloads
// are validated against it before leaving the process, so a drift between this
// service and the renderer shows up as a local validation error instead of an
// opaque 422 from the other side.
const PayloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ReportPayload",
  "type": "object",
  "required": [
    "user_name",
    "archetype",
    "archetype_strengths",
    "archetype_tensions",
    "provocative_questions",
    "agilidades",
    "big_five",
    "ikigai",
    "selected_zone",
    "plan"
  ],
  "properties": {
    "user_name": { "type": "string", "minLength": 1 },
    "archetype": { "type": "string", "minLength": 1 },
    "archetype_strengths": { "type": "array", "items": { "type": "string" } },
    "archetype_tensions": { "type": "array", "items": { "type": "string" } },
    "provocative_questions": { "type": "array", "items": { "type": "string" } },
    "agilidades": {
      "type": "object",
      "required": ["mental", "resultados", "pessoas", "mudancas", "autogestao"],
      "properties": {
        "mental": { "$ref": "#/definitions/score" },
        "resultados": { "$ref": "#/definitions/score" },
        "pessoas": { "$ref": "#/definitions/score" },
        "mudancas": { "$ref": "#/definitions/score" },
        "autogestao": { "$ref": "#/definitions/score" }
      }
    },
    "big_five": {
      "type": "object",
      "required": ["abertura", "conscienciosidade", "extroversao", "amabilidade", "neuroticismo"],
      "properties": {
        "abertura": { "$ref": "#/definitions/score" },
        "conscienciosidade": { "$ref": "#/definitions/score" },
        "extroversao": { "$ref": "#/definitions/score" },
        "amabilidade": { "$ref": "#/definitions/score" },
        "neuroticismo": { "$ref": "#/definitions/score" }
      }
    },
    "ikigai": {
      "type": "object",
      "required": ["amo", "sou_bom", "mundo_precisa", "posso_ser_pago"],
      "properties": {
        "amo": { "type": "array", "items": { "type": "string" } },
        "sou_bom": { "type": "array", "items": { "type": "string" } },
        "mundo_precisa": { "type": "array", "items": { "type": "string" } },
        "posso_ser_pago": { "type": "array", "items": { "type": "string" } }
      }
    },
    "selected_zone": { "type": "string" },
    "plan": {
      "type": "object",
      "required": ["chosen_hypothesis", "experiencias", "pessoas", "educacao", "checkpoints"],
      "properties": {
        "chosen_hypothesis": { "type": "string" },
        "experiencias": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["title", "week", "metric"],
            "properties": {
              "title": { "type": "string" },
              "week": { "type": "integer", "minimum": 1 },
              "metric": { "type": "string" }
            }
          }
        },
        "pessoas": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["profile", "justification"],
            "properties": {
              "profile": { "type": "string" },
              "justification": { "type": "string" }
            }
          }
        },
        "educacao": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["kind", "title"],
            "properties": {
              "kind": { "type": "string" },
              "title": { "type": "string" }
            }
          }
        },
        "checkpoints": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["week", "question"],
            "properties": {
              "week": { "type": "integer", "minimum": 1 },
              "question": { "type": "string" }
            }
          }
        }
      }
    }
  },
  "definitions": {
    "score": { "type": "number", "minimum": 0, "maximum": 5 }
  }
}`

// ValidatePayload checks a payload against PayloadSchema.
func ValidatePayload(p Payload) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	return schemas.ValidateJSONString(PayloadSchema, string(doc))
}
