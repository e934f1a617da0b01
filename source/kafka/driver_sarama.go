package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/IBM/sarama"

	"tabprep/internal/logging"
	"tabprep/internal/table"
	"tabprep/source"
)

// SaramaDriver drains JSON row objects from the configured topics into a
// table. Consumption stops when MaxRecords rows arrived or the topics
// stayed idle for IdleTimeout.
type SaramaDriver struct {
	cfg   Config
	cl    sarama.Client
	group sarama.ConsumerGroup
}

func (d *SaramaDriver) Configure(raw any) error {
	cfg, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("kafka-source: expected Config, got %T", raw)
	}
	d.cfg = cfg

	ver, err := sarama.ParseKafkaVersion(cfg.Version)
	if err != nil {
		return err
	}
	sc := sarama.NewConfig()
	sc.Version = ver
	sc.Consumer.Return.Errors = true
	if cfg.TLSEn {
		sc.Net.TLS.Enable = true
	}
	if cfg.SASLUser != "" {
		sc.Net.SASL.Enable = true
		sc.Net.SASL.User, sc.Net.SASL.Password = cfg.SASLUser, cfg.SASLPass
	}
	switch cfg.StartFrom {
	case "newest":
		sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	default:
		sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	}

	if d.cl, err = sarama.NewClient(cfg.Brokers, sc); err != nil {
		return err
	}
	d.group, err = sarama.NewConsumerGroupFromClient(cfg.GroupID, d.cl)
	return err
}

func (d *SaramaDriver) Load(ctx context.Context) (*table.Table, error) {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h := &batchHandler{out: make(chan []byte, 256)}
	done := make(chan error, 1)
	go func() {
		for {
			if err := d.group.Consume(cctx, d.cfg.Topics, h); err != nil {
				done <- err
				return
			}
			if cctx.Err() != nil {
				done <- nil
				return
			}
		}
	}()

	var raws [][]byte
	idle := time.NewTimer(d.cfg.IdleTimeout)
	defer idle.Stop()
collect:
	for {
		select {
		case raw := <-h.out:
			raws = append(raws, raw)
			if int64(len(raws)) >= d.cfg.MaxRecords {
				break collect
			}
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(d.cfg.IdleTimeout)
		case <-idle.C:
			break collect
		case err := <-done:
			if err != nil {
				return nil, err
			}
			break collect
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	cancel()

	logging.L().Info("kafka-source: batch collected", "rows", len(raws))
	return rowsToTable(raws)
}

func (d *SaramaDriver) Close() error {
	_ = d.group.Close()
	return d.cl.Close()
}

type batchHandler struct {
	out chan []byte
}

func (*batchHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (*batchHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *batchHandler) ConsumeClaim(
	sess sarama.ConsumerGroupSession,
	claim sarama.ConsumerGroupClaim,
) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			select {
			case h.out <- msg.Value:
			case <-sess.Context().Done():
				return sess.Context().Err()
			}
			sess.MarkMessage(msg, "")
		case <-sess.Context().Done():
			return sess.Context().Err()
		}
	}
}

// rowsToTable decodes one JSON object per message into table columns.
// Column order is sorted key order per row, first appearance across rows;
// rows missing a key get the missing marker. Undecodable rows are skipped with a warning.
func rowsToTable(raws [][]byte) (*table.Table, error) {
	var order []string
	seen := make(map[string]bool)
	var rows []map[string]any

	for _, raw := range raws {
		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil {
			logging.L().Warn("kafka-source: skipping undecodable row", "err", err)
			continue
		}
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
		rows = append(rows, row)
	}

	t := table.New()
	for _, name := range order {
		col := make([]table.Value, len(rows))
		for i, row := range rows {
			col[i] = toValue(row[name])
		}
		if err := t.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func toValue(v any) table.Value {
	switch x := v.(type) {
	case nil:
		return table.Missing()
	case string:
		return table.Text(x)
	case float64:
		return table.Number(x)
	case bool:
		if x {
			return table.Text("true")
		}
		return table.Text("false")
	default:
		return table.Text(fmt.Sprint(x))
	}
}

func init() {
	source.Register("sarama", func() source.Adapter { return &SaramaDriver{} })
}
