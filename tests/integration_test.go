package tests

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const (
	baseAPIURL  = "http://localhost:8088/api/v1"
	testModel   = "gemma3:270m-it-qat"
	composeFile = "compose.test.yaml"
)

func TestMain(m *testing.M) {
	log.Println("--- Setting up test environment ---")

	cmdUp := exec.Command("docker", "compose", "-f", composeFile, "up", "-d", "--build")
	if err := runCommand(cmdUp); err != nil {
		log.Printf("Failed to start docker compose: %v. Cleaning up...", err)
		cleanup()
		os.Exit(1)
	}

	if err := waitForBackend(); err != nil {
		log.Printf("Backend not ready: %v. Cleaning up.", err)
		cleanup()
		os.Exit(1)
	}
	log.Println("Backend is ready.")

	exitCode := m.Run()

	log.Println("--- Tearing down test environment ---")
	cleanup()

	os.Exit(exitCode)
}

func cleanup() {
	cmdDown := exec.Command("docker", "compose", "-f", composeFile, "down", "-v")
	if err := runCommand(cmdDown); err != nil {
		log.Printf("WARN: Failed to stop docker-compose: %v", err)
	}
}

func runCommand(cmd *exec.Cmd) error {
	projectRoot, err := getProjectRoot()
	if err != nil {
		return fmt.Errorf("could not find project root: %w", err)
	}
	cmd.Dir = projectRoot

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func getProjectRoot() (string, error) {
	wd, err := os.Getwd() // .../tests
	if err != nil {
		return "", err
	}
	return filepath.Abs(filepath.Join(wd, ".."))
}

func waitForBackend() error {
	client := &http.Client{Timeout: 3 * time.Second}
	for i := 0; i < 30; i++ {
		time.Sleep(2 * time.Second)
		resp, err := client.Get("http://localhost:8088/healthz")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		if err != nil {
			log.Printf("Waiting for backend... attempt %d failed: %v", i+1, err)
		} else if resp != nil {
			log.Printf("Waiting for backend... attempt %d got status: %s", i+1, resp.Status)
			resp.Body.Close()
		}
	}
	return fmt.Errorf("backend did not become ready in time")
}

func TestFullDownloadWorkflow(t *testing.T) {
	t.Run("StatusBeforePull", func(t *testing.T) {
		resp, err := http.Get(baseAPIURL + "/status")
		if err != nil {
			t.Fatalf("Failed to get status: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("StartPull", func(t *testing.T) {
		reqBody, _ := json.Marshal(map[string]string{"name": testModel})
		resp, err := http.Post(baseAPIURL+"/models/pull", "application/json", bytes.NewBuffer(reqBody))
		if err != nil {
			t.Fatalf("Failed to start pull: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusAccepted {
			bodyBytes, _ := io.ReadAll(resp.Body)
			t.Fatalf("Expected status 202, got %d. Body: %s", resp.StatusCode, string(bodyBytes))
		}

		var progress map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&progress); err != nil {
			t.Fatalf("Failed to decode initial progress: %v", err)
		}
		if progress["status"] != "Starting..." {
			t.Fatalf("Expected initial status 'Starting...', got %q", progress["status"])
		}
	})

	t.Run("PollUntilComplete", func(t *testing.T) {
		deadline := time.Now().Add(5 * time.Minute)
		for time.Now().Before(deadline) {
			resp, err := http.Get(baseAPIURL + "/models/pull/" + testModel)
			if err != nil {
				t.Fatalf("Failed to check progress: %v", err)
			}

			var progress map[string]interface{}
			if err := json.NewDecoder(resp.Body).Decode(&progress); err != nil {
				resp.Body.Close()
				t.Fatalf("Failed to decode progress: %v", err)
			}
			resp.Body.Close()

			if done, _ := progress["done"].(bool); done {
				if progress["status"] != "Complete" {
					t.Fatalf("Download finished in state %q with error %q", progress["status"], progress["error"])
				}
				log.Printf("Model '%s' downloaded.", testModel)
				return
			}
			time.Sleep(2 * time.Second)
		}
		t.Fatal("Timed out waiting for the download to complete")
	})

	t.Run("DownloadAppearsInHistory", func(t *testing.T) {
		resp, err := http.Get(baseAPIURL + "/models/downloads")
		if err != nil {
			t.Fatalf("Failed to list downloads: %v", err)
		}
		defer resp.Body.Close()

		var records []map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
			t.Fatalf("Failed to decode download history: %v", err)
		}

		for _, rec := range records {
			if rec["model"] == testModel && rec["status"] == "Complete" {
				return
			}
		}
		t.Fatalf("Expected a completed history record for %q, got %d records", testModel, len(records))
	})

	t.Run("GenerateStream", func(t *testing.T) {
		reqBody := fmt.Sprintf(`{"model": "%s", "prompt": "What is 2+2?"}`, testModel)
		resp, err := http.Post(baseAPIURL+"/generate", "application/json", strings.NewReader(reqBody))
		if err != nil {
			t.Fatalf("Failed to start generation: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200 for generation, got %d", resp.StatusCode)
		}

		scanner := bufio.NewScanner(resp.Body)
		var sawToken, sawEnd bool
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			payload := strings.TrimPrefix(line, "data: ")
			if payload == "__END__" {
				sawEnd = true
				break
			}
			if strings.HasPrefix(payload, "[Error:") {
				t.Fatalf("Generation stream returned an error frame: %s", payload)
			}
			sawToken = true
		}
		if err := scanner.Err(); err != nil {
			t.Fatalf("Error reading stream: %v", err)
		}
		if !sawToken {
			t.Fatal("Stream produced no token fragments")
		}
		if !sawEnd {
			t.Fatal("Stream finished without the __END__ sentinel")
		}
	})

	t.Run("CancelUnknownModelIsNoOp", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, baseAPIURL+"/models/pull/ghost-model", nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Failed to cancel: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200 for cancel, got %d", resp.StatusCode)
		}
		var body map[string]bool
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode cancel response: %v", err)
		}
		if !body["cancelled"] {
			t.Fatal("Expected cancelled:true even for an unknown model")
		}
	})

	t.Run("DeleteModel", func(t *testing.T) {
		reqBody := fmt.Sprintf(`{"name": "%s"}`, testModel)
		req, _ := http.NewRequest(http.MethodDelete, baseAPIURL+"/models", strings.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Failed to delete model: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200 for model deletion, got %d", resp.StatusCode)
		}
	})

	t.Run("VerifyDeletion", func(t *testing.T) {
		resp, err := http.Get(baseAPIURL + "/status")
		if err != nil {
			t.Fatalf("Failed to get status after deletion: %v", err)
		}
		defer resp.Body.Close()

		var status map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			t.Fatalf("Failed to decode status: %v", err)
		}
		models, _ := status["models"].([]interface{})
		for _, m := range models {
			if m == testModel {
				t.Fatalf("Model %q still installed after deletion", testModel)
			}
		}
	})
}
