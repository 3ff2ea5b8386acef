package service_test

import (
	"fmt"

	"irpfdecl/internal/domain"
)

var sheetHeader = []string{"ALUNO", "CPF", "EMAIL", "Turma", "PARCELA", "MêS PARCELA", "VALOR PARCELA", "STATUS PGTO"}

// paymentsTable builds a Table with the spreadsheet header and the given rows.
func paymentsTable(rows ...[]string) *domain.Table {
	values := append([][]string{sheetHeader}, rows...)
	return domain.NewTable(values)
}

func row(name, cpf, email, group string, installment int, monthYear, amount, status string) []string {
	return []string{name, cpf, email, group, fmt.Sprint(installment), monthYear, amount, status}
}

var months = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// paidRows returns n paid 2025 rows of the given amount for one student.
func paidRows(name, cpf, group string, n int, amount string) [][]string {
	out := make([][]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, row(name, cpf, "", group, i, months[(i-1)%12]+"-25", amount, "PAGO"))
	}
	return out
}
