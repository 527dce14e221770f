// Package services provides domain services for workshop operations that span
// several entities and do not belong to a single one.
//
// The package includes:
//   - PayrollGenerator: the monthly payroll run over every mechanic
//   - Cashier: settles an invoice with several payments, all or nothing
package services
