package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Donation represents the donation payload
type Donation struct {
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Method   string `json:"method"`
}

// SignInRequest represents the sign-in payload
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse represents the sign-in response
type SignInResponse struct {
	Token string `json:"token"`
}

// DonationResponse represents the API response
type DonationResponse struct {
	EventID      string `json:"eventId"`
	Status       string `json:"status"`
	ResultTotal  string `json:"resultTotal,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
	Scenario     string
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// DonationScenario defines a donation scenario
type DonationScenario struct {
	Name     string
	Amount   string
	Category string
	Method   string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of donations to record")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	email := flag.String("email", "loadtest@fundr.local", "Account email to donate as")
	password := flag.String("password", "loadtest-password", "Account password")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	scenarios := []DonationScenario{
		{"Health Small", "50.00", "Health", "GCash"},
		{"Health Large", "500.00", "Health", "Maya"},
		{"Emergency", "250.00", "Emergency", "GCash"},
		{"Children", "100.00", "Children", "Maya"},
		{"Environment", "75.50", "Environment", "GCash"},
		{"Education", "300.00", "Education", "Maya"},
	}

	token, err := signIn(*baseURL, *email, *password)
	if err != nil {
		fmt.Printf("Sign-in failed: %v\n", err)
		fmt.Println("Create the account first via POST /auth/signup")
		return
	}

	fmt.Printf("Load testing %s as %s\n", *baseURL, *email)
	fmt.Printf("Donation scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, token, *delayMs, scenarios, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ScenarioStats[result.Scenario]++
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

	start := time.Now()
	wg.Wait()
	close(results)
	<-done
	elapsed := time.Since(start)

	printStats(stats, elapsed)
}

func signIn(baseURL, email, password string) (string, error) {
	body, err := json.Marshal(SignInRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	resp, err := http.Post(baseURL+"/auth/signin", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sign-in returned status %d", resp.StatusCode)
	}

	var signInResp SignInResponse
	if err := json.NewDecoder(resp.Body).Decode(&signInResp); err != nil {
		return "", err
	}
	return signInResp.Token, nil
}

func worker(baseURL, token string, delayMs int, scenarios []DonationScenario, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 30 * time.Second}

	for range jobs {
		scenario := scenarios[rand.Intn(len(scenarios))]
		results <- recordDonation(client, baseURL, token, scenario)
		time.Sleep(time.Duration(delayMs) * time.Millisecond)
	}
}

func recordDonation(client *http.Client, baseURL, token string, scenario DonationScenario) TestResult {
	body, err := json.Marshal(Donation{
		Amount:   scenario.Amount,
		Category: scenario.Category,
		Method:   scenario.Method,
	})
	if err != nil {
		return TestResult{Error: err, Scenario: scenario.Name}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/donations", bytes.NewReader(body))
	if err != nil {
		return TestResult{Error: err, Scenario: scenario.Name}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return TestResult{Error: err, ResponseTime: elapsed, Scenario: scenario.Name}
	}
	defer resp.Body.Close()

	var donationResp DonationResponse
	if err := json.NewDecoder(resp.Body).Decode(&donationResp); err != nil {
		return TestResult{Error: err, ResponseTime: elapsed, StatusCode: resp.StatusCode, Scenario: scenario.Name}
	}

	if resp.StatusCode != http.StatusCreated {
		return TestResult{
			Error:        fmt.Errorf("status %d: %s", resp.StatusCode, donationResp.ErrorMessage),
			ResponseTime: elapsed,
			StatusCode:   resp.StatusCode,
			Scenario:     scenario.Name,
		}
	}

	return TestResult{Success: true, ResponseTime: elapsed, StatusCode: resp.StatusCode, Scenario: scenario.Name}
}

func printStats(stats *TestStats, elapsed time.Duration) {
	fmt.Println("\n=== Load Test Results ===")
	fmt.Printf("Total time: %v\n", elapsed)
	fmt.Printf("Successful: %d / %d\n", stats.SuccessfulRequests, stats.TotalRequests)
	fmt.Printf("Failed: %d\n", stats.FailedRequests)

	if len(stats.ResponseTimes) > 0 {
		fmt.Printf("Min response time: %v\n", stats.MinResponseTime)
		fmt.Printf("Max response time: %v\n", stats.MaxResponseTime)
		fmt.Printf("Avg response time: %v\n", stats.TotalResponseTime/time.Duration(len(stats.ResponseTimes)))

		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		fmt.Printf("p50: %v\n", sorted[len(sorted)*50/100])
		fmt.Printf("p95: %v\n", sorted[len(sorted)*95/100])
	}

	fmt.Println("\nRequests per scenario:")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("  %s: %d\n", name, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\nErrors:")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("  %dx %s\n", count, msg)
		}
	}
}
