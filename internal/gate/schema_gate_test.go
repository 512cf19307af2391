package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaShapeCheck_MatchingShapePasses(t *testing.T) {
	schema := Schema{
		"seed":           KindString,
		"rounds":         KindNumber,
		"deterministic":  KindBool,
	}
	data := []byte(`{"seed":"xrpl-agent-lab-v1","rounds":20,"deterministic":true}`)
	result := SchemaShapeCheck("local_cluster_schema", data, schema)()
	assert.True(t, result.Pass, result.Reason)
}

func TestSchemaShapeCheck_MissingFieldFails(t *testing.T) {
	schema := Schema{"seed": KindString, "rounds": KindNumber}
	data := []byte(`{"seed":"xrpl-agent-lab-v1"}`)
	result := SchemaShapeCheck("local_cluster_schema", data, schema)()
	assert.False(t, result.Pass)
	assert.Contains(t, result.Reason, "rounds")
}

func TestSchemaShapeCheck_UnexpectedFieldFails(t *testing.T) {
	schema := Schema{"seed": KindString}
	data := []byte(`{"seed":"xrpl-agent-lab-v1","extra":1}`)
	result := SchemaShapeCheck("local_cluster_schema", data, schema)()
	assert.False(t, result.Pass)
	assert.Contains(t, result.Reason, "extra")
}

func TestSchemaShapeCheck_WrongKindFails(t *testing.T) {
	schema := Schema{"seed": KindNumber}
	data := []byte(`{"seed":"xrpl-agent-lab-v1"}`)
	result := SchemaShapeCheck("local_cluster_schema", data, schema)()
	assert.False(t, result.Pass)
	assert.Contains(t, result.Reason, "seed")
}

func TestSchemaShapeCheck_InvalidJSONFails(t *testing.T) {
	result := SchemaShapeCheck("broken", []byte("not json"), Schema{})()
	assert.False(t, result.Pass)
}
