// Command ffq is a CLI front end over the ffq package: mode dispatch,
// flag parsing, and producer/consumer goroutine wiring for manual
// testing, benchmarking, and the file/stream embeddings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fastforwardq/ffq"
	"github.com/fastforwardq/ffq/internal/filesource"
	"github.com/fastforwardq/ffq/internal/gateway"
	"github.com/fastforwardq/ffq/internal/stats"
	"github.com/fastforwardq/ffq/internal/weather"
)

type config struct {
	mode          string
	queueSize     int
	items         int
	consumers     int
	producerDelay time.Duration
	consumerDelay time.Duration
	csvFile       string
	kafkaBrokers  string
	kafkaTopic    string
	benchmarkTime time.Duration
	detailedStats bool
	maxRetries    int
}

func parseFlags() config {
	var c config
	var producerDelayMS, consumerDelayMS int
	flag.StringVar(&c.mode, "mode", "test", "run mode: test, benchmark, file, stream")
	flag.IntVar(&c.queueSize, "queue-size", 4, "queue capacity (must be >= 2)")
	flag.IntVar(&c.items, "items", 10, "number of items to produce")
	flag.IntVar(&c.consumers, "consumers", 3, "number of consumer goroutines")
	flag.IntVar(&producerDelayMS, "producer-delay", 50, "delay between enqueues, in milliseconds")
	flag.IntVar(&consumerDelayMS, "consumer-delay", 200, "delay after each dequeue, in milliseconds")
	flag.StringVar(&c.csvFile, "csv-file", "", "file mode: path to the CSV file to tail")
	flag.StringVar(&c.kafkaBrokers, "kafka-brokers", "", "stream mode: comma-separated broker addresses; empty falls back to simulation")
	flag.StringVar(&c.kafkaTopic, "kafka-topic", "weather", "stream mode: topic name")
	flag.DurationVar(&c.benchmarkTime, "benchmark-time", 0, "benchmark mode: run for a fixed duration instead of a fixed item count")
	flag.BoolVar(&c.detailedStats, "detailed-stats", false, "benchmark mode: also print the total elapsed time")
	flag.IntVar(&c.maxRetries, "max-retries", 0, "advisory dequeue retry cap (0 = unlimited)")
	flag.Parse()
	c.producerDelay = time.Duration(producerDelayMS) * time.Millisecond
	c.consumerDelay = time.Duration(consumerDelayMS) * time.Millisecond

	if c.queueSize < 2 {
		log.Fatalf("--queue-size must be >= 2, got %d", c.queueSize)
	}
	if c.items < 1 {
		log.Fatalf("--items must be >= 1, got %d", c.items)
	}
	if c.consumers < 1 {
		log.Fatalf("--consumers must be >= 1, got %d", c.consumers)
	}
	return c
}

func main() {
	c := parseFlags()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	b := ffq.New(c.queueSize)
	if c.maxRetries > 0 {
		b = b.WithMaxRetries(c.maxRetries)
	}

	h, err := ffq.Open[weather.Data](b)
	if err != nil {
		log.Fatalf("ffq.Open: %v", err)
	}
	defer h.Close()

	switch c.mode {
	case "test":
		runTest(ctx, h, c, b)
	case "benchmark":
		runBenchmark(ctx, h, c, b)
	case "file":
		runFile(ctx, h, c, b)
	case "stream":
		runStream(ctx, h, c, b)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", c.mode)
		flag.Usage()
		os.Exit(1)
	}
}

// attachConsumers starts c.consumers goroutines reading from h's region,
// each handing every dequeued record to onItem, and exits the
// individual consumer loop the moment it personally dequeues the
// sentinel. Returns a WaitGroup-style done channel closed once every
// consumer has exited.
func attachConsumers(region *ffq.Region[weather.Data], c config, b *ffq.Builder, onItem func(consumerID int, d weather.Data)) <-chan struct{} {
	done := make(chan struct{})
	remaining := c.consumers

	finished := make(chan int, c.consumers)
	for id := 0; id < c.consumers; id++ {
		go func(id int) {
			consumer, err := ffq.Attach[weather.Data](region, b)
			if err != nil {
				log.Fatalf("consumer %d: Attach: %v", id, err)
			}
			defer consumer.Close()

			for {
				item, err := consumer.Dequeue(id)
				if err != nil {
					log.Printf("consumer %d: Dequeue: %v", id, err)
					break
				}
				if weather.IsSentinel(&item) {
					break
				}
				onItem(id, item)
				if c.consumerDelay > 0 {
					time.Sleep(c.consumerDelay)
				}
			}
			finished <- id
		}(id)
	}

	go func() {
		for i := 0; i < remaining; i++ {
			<-finished
		}
		close(done)
	}()
	return done
}

func enqueueSentinels(h *ffq.Handle[weather.Data], n int) {
	s := weather.Sentinel()
	for i := 0; i < n; i++ {
		h.Enqueue(&s)
	}
}

func runTest(ctx context.Context, h *ffq.Handle[weather.Data], c config, b *ffq.Builder) {
	log.Println("test mode started")
	done := attachConsumers(h.Region(), c, b, func(id int, d weather.Data) {
		log.Printf("consumer %d: %s %s aqi=%d icon=%s wind=%.1f humidity=%d", id, d.Timestamp, d.City, d.AQI, d.Icon, d.WindSpeed, d.Humidity)
	})

	for i := 0; i < c.items; i++ {
		d := weather.Data{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			City:      "TestCity",
			AQI:       int32(i),
			Icon:      "sunny",
			WindSpeed: 1.1 * float32(i),
			Humidity:  50,
			Valid:     true,
		}
		h.Enqueue(&d)
		if c.producerDelay > 0 {
			time.Sleep(c.producerDelay)
		}
	}
	enqueueSentinels(h, c.consumers)

	select {
	case <-done:
		log.Println("test mode finished")
	case <-ctx.Done():
		log.Println("test mode interrupted")
	}
}

func runBenchmark(ctx context.Context, h *ffq.Handle[weather.Data], c config, b *ffq.Builder) {
	log.Println("benchmark mode started")
	collector := stats.NewCollector()

	done := attachConsumers(h.Region(), c, b, func(id int, d weather.Data) {
		collector.Record(time.Since(mustParseTime(d.Timestamp)))
	})

	start := time.Now()
	produced := 0
	for c.benchmarkTime > 0 && time.Since(start) < c.benchmarkTime || c.benchmarkTime == 0 && produced < c.items {
		d := weather.Data{
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			City:      "BenchCity",
			AQI:       int32(produced % 500),
			Icon:      "sunny",
			Valid:     true,
		}
		h.Enqueue(&d)
		produced++
	}
	enqueueSentinels(h, c.consumers)

	select {
	case <-done:
	case <-ctx.Done():
	}
	collector.Stop()

	r := collector.Snapshot()
	fmt.Printf("items=%d throughput=%.1f/s avg=%.3fms min=%.3fms max=%.3fms stddev=%.3fms\n",
		r.ItemsProcessed, r.ThroughputPS, r.AvgLatencyMS, r.MinLatencyMS, r.MaxLatencyMS, r.LatencyStdDev)
	if c.detailedStats {
		fmt.Printf("total_time=%.1fms\n", r.TotalTimeMS)
	}
}

func mustParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Now()
	}
	return t
}

func runFile(ctx context.Context, h *ffq.Handle[weather.Data], c config, b *ffq.Builder) {
	if c.csvFile == "" {
		log.Fatal("file mode requires --csv-file")
	}
	log.Printf("file mode started with file: %s", c.csvFile)

	done := attachConsumers(h.Region(), c, b, func(id int, d weather.Data) {
		log.Printf("consumer %d: %s %s aqi=%d", id, d.Timestamp, d.City, d.AQI)
	})

	tailer := filesource.NewTailer(c.csvFile, 500*time.Millisecond)
	rows := make(chan weather.Data, c.queueSize)
	go func() {
		if err := tailer.Run(ctx, rows); err != nil && ctx.Err() == nil {
			log.Printf("file tailer exited: %v", err)
		}
	}()

	for {
		select {
		case d := <-rows:
			h.Enqueue(&d)
		case <-ctx.Done():
			enqueueSentinels(h, c.consumers)
			<-done
			return
		}
	}
}

func runStream(ctx context.Context, h *ffq.Handle[weather.Data], c config, b *ffq.Builder) {
	log.Println("stream mode started")

	var src gateway.Source
	if c.kafkaBrokers != "" {
		src = gateway.NewKafkaSource(strings.Split(c.kafkaBrokers, ","), c.kafkaTopic, "ffq")
		log.Printf("stream mode: reading from kafka brokers=%s topic=%s", c.kafkaBrokers, c.kafkaTopic)
	} else {
		src = gateway.NewSimulationSource(100 * time.Millisecond)
		log.Println("stream mode: no brokers configured, falling back to simulation")
	}
	defer src.Close()

	done := attachConsumers(h.Region(), c, b, func(id int, d weather.Data) {
		log.Printf("consumer %d: %s %s aqi=%d", id, d.Timestamp, d.City, d.AQI)
	})

	for {
		d, err := src.Next(ctx)
		if err != nil {
			enqueueSentinels(h, c.consumers)
			<-done
			return
		}
		h.Enqueue(&d)
	}
}
