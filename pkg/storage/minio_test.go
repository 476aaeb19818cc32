package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/config"
)

func TestNewMinioService(t *testing.T) {
	svc, err := NewMinioService(config.MinioConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "documentos",
	})
	require.NoError(t, err)
	assert.NotNil(t, svc)
	assert.Equal(t, "documentos", svc.bucket)
}

func TestNewMinioService_BadEndpoint(t *testing.T) {
	_, err := NewMinioService(config.MinioConfig{
		Endpoint: "://not a host",
	})
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("case-1", "doc-2", "pagaré.pdf")
	assert.Equal(t, "case-1/doc-2/pagaré.pdf", key)
}
