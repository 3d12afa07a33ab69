package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/krew-solutions/ascetic-oo-go/asceticoo/notifier"
)

type Counter struct {
	*notifier.Notifier[*Counter, int]
	Value       int
	Invocations int
}

func NewCounter(value int, opts ...notifier.Option) *Counter {
	c := &Counter{Value: value}
	c.Notifier = notifier.New[*Counter, int](c, opts...)
	return c
}

func onChanged(c *Counter, value int) error {
	c.Value = value
	c.Invocations++
	return nil
}

type notifyOptions struct {
	value   int
	twice   bool
	metrics bool
}

func newNotifyCmd(cfg *Config) *cobra.Command {
	opts := &notifyOptions{}
	cmd := &cobra.Command{
		Use:     "notify",
		Short:   "Subscribe a handler to a counter and publish a change",
		Example: "  oodemo notify --value 42\n  oodemo notify --twice --metrics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotify(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}
	cmd.Flags().IntVar(&opts.value, "value", 42, "Value to publish on the changed event")
	cmd.Flags().BoolVar(&opts.twice, "twice", false, "Subscribe the same handler twice")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print notifier metrics after publishing")
	return cmd
}

func runNotify(out, logOut io.Writer, cfg *Config, opts *notifyOptions) error {
	logger, err := newLogger(logOut, cfg)
	if err != nil {
		return errors.Wrap(err, "unable to configure logging")
	}
	registry := prometheus.NewRegistry()
	metrics := notifier.NewMetrics("oodemo", notifier.PerEvent())
	if err := metrics.Register(registry); err != nil {
		return err
	}

	counter := NewCounter(1,
		notifier.WithLogger(logger),
		notifier.WithName("counter"),
		notifier.WithMetrics(metrics),
	)
	counter.Subscribe("changed", onChanged)
	if opts.twice {
		counter.Subscribe("changed", onChanged)
	}
	if err := counter.Publish("changed", opts.value); err != nil {
		return errors.Wrap(err, "publish changed")
	}
	fmt.Fprintf(out, "value=%d invocations=%d\n", counter.Value, counter.Invocations)

	if opts.metrics {
		return writeMetrics(out, registry)
	}
	return nil
}

func writeMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			sort.Strings(labels)
			var value float64
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			fmt.Fprintf(out, "%s{%s} %g\n", family.GetName(), strings.Join(labels, ","), value)
		}
	}
	return nil
}
