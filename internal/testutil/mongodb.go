//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const defaultMongoImage = "mongo:7.0"

// MongoDBContainer is a running MongoDB, either a testcontainer or an
// external server named by MONGODB_TEST_URI.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

var shared struct {
	sync.Mutex
	db *MongoDBContainer
}

// SetupMongoDB starts MongoDB in a container. MONGODB_TEST_IMAGE overrides
// the image. When MONGODB_TEST_URI is set no container is started and that
// server is used instead.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	if uri := os.Getenv("MONGODB_TEST_URI"); uri != "" {
		return &MongoDBContainer{URI: uri}, nil
	}

	image := os.Getenv("MONGODB_TEST_IMAGE")
	if image == "" {
		image = defaultMongoImage
	}
	container, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("start %s container: %w", image, err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("read connection string: %w", err)
	}
	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container, if one was started.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate container: %w", err)
	}
	return nil
}

// SetupTestMainWithMongoDB runs a package's tests against one shared MongoDB
// and returns the exit code for os.Exit:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	db, err := SetupMongoDB(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "integration tests need MongoDB:", err)
		return 1
	}
	shared.Lock()
	shared.db = db
	shared.Unlock()

	code := m.Run()

	if err := db.Cleanup(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: MongoDB container left running:", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the MongoDB TestMain started.
func GetSharedContainerURI() string {
	shared.Lock()
	defer shared.Unlock()
	if shared.db == nil {
		panic("testutil: shared MongoDB not started, call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.db.URI
}
