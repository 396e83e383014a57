package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	if err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := MQTTTopic(); got != "seismic/readings" {
		t.Fatalf("default MQTT_TOPIC = %q", got)
	}
	if UsePostgres() {
		t.Fatalf("postgres must be off by default")
	}
	if UseCloudServices() {
		t.Fatalf("cloud services must be off by default")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("MQTT_BROKER", "tcp://broker.example:1883")
	t.Setenv("USE_POSTGRES", "true")

	if err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := MQTTBroker(); got != "tcp://broker.example:1883" {
		t.Fatalf("MQTT_BROKER override not applied: %q", got)
	}
	if !UsePostgres() {
		t.Fatalf("USE_POSTGRES override not applied")
	}
}
