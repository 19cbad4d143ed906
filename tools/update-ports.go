package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"
)

const registryURL = "https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv"

func main() {
	if err := run("./scan/known.go"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {

	client := &http.Client{Timeout: time.Minute}
	resp, err := client.Get(registryURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status fetching registry: %s", resp.Status)
	}

	output, err := os.Create(path)
	if err != nil {
		return err
	}
	defer output.Close()

	fmt.Fprintf(output, `package scan

// data from %s
// regenerate with: go run ./tools/update-ports.go
var knownPorts = map[uint16]string{`, registryURL)

	seen := map[uint64]bool{}
	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if len(record) < 3 || record[2] != "tcp" || record[0] == "" || record[1] == "" {
			continue
		}

		// ranges such as "6000-6063" are skipped
		port, err := strconv.ParseUint(record[1], 10, 16)
		if err != nil || seen[port] {
			continue
		}
		seen[port] = true

		fmt.Fprintf(output, "\n\t%d: %q,", port, record[0])
	}

	_, err = output.WriteString("\n}\n")
	return err
}
