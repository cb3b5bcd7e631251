package mqtt_test

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/nexavolt/vehiclecore/pkg/mqtt"
)

// ExampleClient demonstrates the standard lifecycle of the MQTT client: build
// a config, start the client, subscribe with a handler, publish, then
// disconnect. It does not wait for the connection to come up before
// publishing, and ignores Publish's error.
func ExampleClient() {
	cfg := &mqtt.ClientConfig{
		BrokerURL:          "tcp://localhost:1883",
		ClientID:           "example-client-001",
		Username:           "admin",
		Password:           "public",
		KeepAlive:          60,
		ConnectTimeout:     5 * time.Second,
		InsecureSkipVerify: true,
		CleanStart:         false,
	}

	client, err := mqtt.NewClient(cfg, logr.Discard())
	if err != nil {
		fmt.Println("failed to create mqtt client:", err)
		return
	}

	ctx := context.Background()
	if err := client.Start(ctx); err != nil {
		fmt.Println("failed to start mqtt client:", err)
		return
	}
	defer client.Disconnect(ctx)

	handler := func(_ context.Context, topic string, payload []byte) {
		fmt.Printf("received message on topic %s: %s\n", topic, string(payload))
	}

	subTopic := "oversea/res/+"
	if err := client.Subscribe(ctx, subTopic, 1, handler); err != nil {
		fmt.Println("failed to subscribe:", err)
		return
	}

	_ = client.Publish(ctx, "oversea/res/1434", 1, false, []byte(`{"type":"vehicleInfo"}`))
}
