package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const (
	defaultBaseURL = "http://127.0.0.1:8090"
	numWorkers     = 20
	phaseDuration  = 10 * time.Second
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	latency  time.Duration
	failed   bool
}

type endpointStats struct {
	count     int
	failures  int
	latencies []time.Duration
}

type request func(base string, rng *rand.Rand) result

func main() {
	base := os.Getenv("MOOD_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}

	fmt.Println("=== moodtracker load test ===")
	fmt.Printf("Target: %s | Workers: %d | Phase: %s\n", base, numWorkers, phaseDuration)

	if !waitForServer(base) {
		fmt.Println("FAILED: server not responding")
		os.Exit(1)
	}

	fmt.Println("\n--- Write-heavy: 80% POST /mood ---")
	runPhase(base, func(base string, rng *rand.Rand) result {
		if rng.Float64() < 0.8 {
			return postMood(base, rng)
		}
		return get(base, "/summary")
	})

	fmt.Println("\n--- Dashboard reads: 5% POST /mood, cached GETs ---")
	runPhase(base, func(base string, rng *rand.Rand) result {
		switch r := rng.Float64(); {
		case r < 0.05:
			return postMood(base, rng)
		case r < 0.55:
			return get(base, "/summary")
		case r < 0.80:
			return get(base, "/history")
		default:
			return get(base, "/recommendations")
		}
	})
}

func waitForServer(base string) bool {
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(base + "/health")
		if err == nil {
			drain(resp)
			fmt.Println("OK")
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

func runPhase(base string, do request) {
	results := make(chan result, 1024)
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- do(base, rng)
				}
			}
		}(time.Now().UnixNano() + int64(i))
	}

	byEndpoint := make(map[string]*endpointStats)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range results {
			s, ok := byEndpoint[r.endpoint]
			if !ok {
				s = &endpointStats{}
				byEndpoint[r.endpoint] = s
			}
			s.count++
			if r.failed {
				s.failures++
			}
			s.latencies = append(s.latencies, r.latency)
		}
	}()

	time.Sleep(phaseDuration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	report(byEndpoint)
}

func report(byEndpoint map[string]*endpointStats) {
	endpoints := make([]string, 0, len(byEndpoint))
	for ep := range byEndpoint {
		endpoints = append(endpoints, ep)
	}
	slices.Sort(endpoints)

	fmt.Printf("\n  %-24s %8s %6s %10s %10s %10s\n", "Endpoint", "Reqs", "Fail", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 72))

	total, failures := 0, 0
	for _, ep := range endpoints {
		s := byEndpoint[ep]
		total += s.count
		failures += s.failures
		slices.Sort(s.latencies)
		fmt.Printf("  %-24s %8d %6d %10s %10s %10s\n", ep, s.count, s.failures,
			percentile(s.latencies, 0.50), percentile(s.latencies, 0.95), percentile(s.latencies, 0.99))
	}

	fmt.Println("  " + strings.Repeat("-", 72))
	fmt.Printf("  Total: %d reqs | Failures: %d | RPS: %.0f\n", total, failures, float64(total)/phaseDuration.Seconds())
}

func postMood(base string, rng *rand.Rand) result {
	body, _ := json.Marshal(map[string]int{"mood": rng.Intn(5) + 1})
	start := time.Now()
	resp, err := httpClient.Post(base+"/mood", "application/json", bytes.NewReader(body))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /mood", lat, true}
	}
	drain(resp)
	return result{"POST /mood", lat, resp.StatusCode != http.StatusCreated}
}

func get(base, path string) result {
	start := time.Now()
	resp, err := httpClient.Get(base + path)
	lat := time.Since(start)
	if err != nil {
		return result{"GET " + path, lat, true}
	}
	drain(resp)
	return result{"GET " + path, lat, resp.StatusCode != http.StatusOK}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := min(int(float64(len(sorted))*p), len(sorted)-1)
	return sorted[idx].Round(time.Microsecond)
}
