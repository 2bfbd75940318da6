package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

type transferRequest struct {
	FromCardID uint64 `json:"fromCardId"`
	ToCardID   uint64 `json:"toCardId"`
	Amount     string `json:"amount"`
}

type balanceResponse struct {
	CardID  uint64 `json:"cardId"`
	Balance string `json:"balance"`
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Kind         string
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	DirectionStats     map[string]int
	Lock               sync.Mutex
}

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of transfers to send")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	username := flag.String("user", "john", "Card owner to log in as")
	password := flag.String("password", "secret", "Password of the card owner")
	cardA := flag.Uint64("a", 1, "First card id (owned by -user)")
	cardB := flag.Uint64("b", 2, "Second card id (owned by -user)")
	amounts := flag.String("amount", "1.00,2.50,5.00", "Comma-separated transfer amounts picked at random")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	api := &client{baseURL: *baseURL, http: &http.Client{Timeout: 10 * time.Second}}
	if err := api.login(*username, *password); err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}

	pool, err := parseAmounts(*amounts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -amount: %v\n", err)
		os.Exit(1)
	}

	before, err := api.total(*cardA, *cardB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading balances failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing transfers between cards %d and %d as %s\n", *cardA, *cardB, *username)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)
	fmt.Printf("Combined balance before: %s\n", before.StringFixed(2))

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		DirectionStats:  make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				from, to := *cardA, *cardB
				if rand.Intn(2) == 0 {
					from, to = to, from
				}
				stats.Lock.Lock()
				stats.DirectionStats[fmt.Sprintf("%d -> %d", from, to)]++
				stats.Lock.Unlock()

				results <- api.transfer(from, to, pool[rand.Intn(len(pool))])
			}
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				key := result.Kind
				if key == "" && result.Error != nil {
					key = result.Error.Error()
				}
				stats.ErrorCounts[key]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	collected.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	after, err := api.total(*cardA, *cardB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading balances failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\n----------------- CONSERVATION -----------------")
	fmt.Printf("Combined balance after: %s\n", after.StringFixed(2))
	if !after.Equal(before) {
		fmt.Printf("FAIL: combined balance changed by %s\n", after.Sub(before).StringFixed(2))
		os.Exit(2)
	}
	fmt.Println("OK: combined balance unchanged")
}

func parseAmounts(list string) ([]string, error) {
	var amounts []string
	for _, raw := range bytes.Split([]byte(list), []byte(",")) {
		value := string(bytes.TrimSpace(raw))
		if value == "" {
			continue
		}
		if _, err := decimal.NewFromString(value); err != nil {
			return nil, err
		}
		amounts = append(amounts, value)
	}
	if len(amounts) == 0 {
		return nil, errors.New("no amounts given")
	}
	return amounts, nil
}

func (c *client) login(username, password string) error {
	body, _ := json.Marshal(credentials{Username: username, Password: password})
	resp, err := c.http.Post(c.baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return err
	}
	c.token = auth.Token
	return nil
}

func (c *client) do(method, path string, payload any) (*http.Response, error) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, c.baseURL+path, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.http.Do(req)
}

func (c *client) transfer(from, to uint64, amount string) TestResult {
	start := time.Now()
	resp, err := c.do(http.MethodPost, "/api/user/card/transfer", transferRequest{
		FromCardID: from,
		ToCardID:   to,
		Amount:     amount,
	})
	result := TestResult{ResponseTime: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		result.Kind = apiErr.Kind
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func (c *client) balance(cardID uint64) (decimal.Decimal, error) {
	resp, err := c.do(http.MethodGet, fmt.Sprintf("/api/user/card/%d/balance", cardID), nil)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("card %d: HTTP status code %d", cardID, resp.StatusCode)
	}
	var b balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(b.Balance)
}

func (c *client) total(cardIDs ...uint64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, id := range cardIDs {
		b, err := c.balance(id)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(b)
	}
	return sum, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Successful TPS:      %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- DIRECTIONS -----------------")
	for direction, count := range stats.DirectionStats {
		fmt.Printf("%-15s: %d requests\n", direction, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for kind, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", kind, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
}
