// Package kafka emits one JSON row object per message onto a topic.
package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"tabprep/internal/table"
	"tabprep/sink"
)

type Config struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Acks    int16    `yaml:"required_acks"` // 0,1,-1
}

type driver struct {
	cfg Config
	p   sarama.AsyncProducer
}

func (d *driver) Configure(c any) error {
	cfg, ok := c.(Config)
	if !ok {
		return fmt.Errorf("kafka-sink: want Config")
	}
	d.cfg = cfg

	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.RequiredAcks(cfg.Acks)
	var err error
	d.p, err = sarama.NewAsyncProducer(cfg.Brokers, sc)
	return err
}

func (d *driver) Write(t *table.Table) error {
	names := t.Columns()
	for i := 0; i < t.Rows(); i++ {
		row := make(map[string]any, len(names))
		for _, name := range names {
			vals, _ := t.Column(name)
			row[name] = toJSON(vals[i])
		}
		raw, err := json.Marshal(row)
		if err != nil {
			return err
		}
		d.p.Input() <- &sarama.ProducerMessage{
			Topic: d.cfg.Topic,
			Value: sarama.ByteEncoder(raw),
		}
	}
	return nil
}

func (d *driver) Close() error {
	return d.p.Close()
}

func toJSON(v table.Value) any {
	switch v.Kind() {
	case table.KindMissing:
		return nil
	case table.KindNumber:
		return v.Number()
	default:
		return v.Render()
	}
}

func init() { sink.Register("kafka", func() sink.Adapter { return &driver{} }) }
