package test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tidepool-org/roster/store"
	"github.com/tidepool-org/roster/test"
)

const (
	mongoTestHost = "mongodb://127.0.0.1:27017"
	mongoTimeout  = time.Second * 5
)

var database *mongo.Database

func host() string {
	if addresses := os.Getenv("TIDEPOOL_STORE_ADDRESSES"); addresses != "" {
		return fmt.Sprintf("mongodb://%s", addresses)
	}
	return mongoTestHost
}

// SetupDatabase connects to the test deployment and skips the current
// container when it is unreachable.
func SetupDatabase() {
	client, err := store.Connect(host())
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		ginkgo.Skip(fmt.Sprintf("mongo is not available: %v", err))
	}

	databaseName := fmt.Sprintf("roster_test_%s_%d", test.Faker.Letter(), ginkgo.GinkgoParallelProcess())
	database = client.Database(databaseName)
}

func TeardownDatabase() {
	if database == nil {
		return
	}
	err := database.Drop(context.Background())
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	Expect(database.Client().Disconnect(ctx)).ToNot(HaveOccurred())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	Expect(database).ToNot(BeNil())
	return database
}
