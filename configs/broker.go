package configs

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// NewBroker connects the MQTT client used to publish prayer transition
// events. An empty URL disables publishing and returns a nil client.
func NewBroker(brokerURL string) (mqtt.Client, error) {
	if brokerURL == "" {
		return nil, nil
	}

	options := mqtt.NewClientOptions()
	options.AddBroker(brokerURL)
	options.SetClientID("jadwal-sholat-service")
	options.SetAutoReconnect(true)
	options.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Error().Err(err).Msg("mqtt connection lost")
	}

	client := mqtt.NewClient(options)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return client, nil
}
