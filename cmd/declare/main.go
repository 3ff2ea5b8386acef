// Command declare generates a single declaration from the configured source
// and writes it to disk, without going through HTTP.
// Usage: go run ./cmd/declare -nome "Maria da Silva" -cpf 12345678901 [-email x] [-out dir] [-csv]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	_ "time/tzdata"

	"irpfdecl/internal/app"
	"irpfdecl/internal/config"
	"irpfdecl/internal/csvexport"
	"irpfdecl/internal/domain"
	"irpfdecl/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	name := flag.String("nome", "", "student name")
	cpf := flag.String("cpf", "", "student CPF")
	email := flag.String("email", "", "student email")
	outDir := flag.String("out", ".", "output directory")
	withCSV := flag.Bool("csv", false, "also write the installments as CSV")
	flag.Parse()

	if *name == "" || *cpf == "" {
		flag.Usage()
		return errors.New("nome and cpf are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	svc, err := app.NewDeclarationService(cfg)
	if err != nil {
		return err
	}

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{
		Name:       *name,
		NationalID: *cpf,
		Email:      *email,
	})
	if err != nil {
		return fmt.Errorf("generating declaration: %w", err)
	}

	switch outcome.Kind {
	case domain.OutcomeNotFound:
		return domain.ErrStudentNotFound
	case domain.OutcomeNoEligiblePayments:
		return fmt.Errorf("group %s: %w", outcome.GroupID, domain.ErrNoEligiblePayments)
	case domain.OutcomeNonPDFGroup:
		log.Printf("Group %s receives the written tutorial; no PDF generated", outcome.GroupID)
		return nil
	}

	path := filepath.Join(*outDir, outcome.Filename)
	if err := os.WriteFile(path, outcome.PDF, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Printf("Wrote %s (%d installments, total %s)", path, outcome.InstallmentCount, outcome.Total)

	if *withCSV {
		csvPath := filepath.Join(*outDir, csvexport.BuildFilename(outcome.Filename))
		if err := writeCSV(csvPath, outcome.Data); err != nil {
			return err
		}
		log.Printf("Wrote %s", csvPath)
	}
	return nil
}

func writeCSV(path string, data *domain.DeclarationData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := writeInstallments(f, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeInstallments writes the BOM-prefixed CSV and closes w.
func writeInstallments(w io.WriteCloser, data *domain.DeclarationData) error {
	if err := encodeInstallments(w, data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func encodeInstallments(w io.Writer, data *domain.DeclarationData) error {
	if _, err := w.Write(csvexport.BOM); err != nil {
		return err
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteDeclaration(data); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
