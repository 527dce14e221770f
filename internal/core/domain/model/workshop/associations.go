package workshop

import (
	"errors"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// This file is the only place where references between entities are written.
// Each relationship has a link and an unlink function that update both sides
// together. Unlinking an already unlinked pair is a no-op.
//
//	Owns         Client            1 ── * Vehicle
//	Classifies   VehicleType       1 ── * Vehicle
//	Holds        Client            1 ── * PaymentMean
//	Fixes        Vehicle           1 ── * WorkOrder
//	Assigns      Mechanic          1 ── * WorkOrder
//	Bills        Invoice           1 ── * WorkOrder
//	Intervenes   WorkOrder, Mechanic 1 ── * Intervention
//	Substitutes  Intervention, SparePart 1 ── * Substitution
//	Settles      Invoice, PaymentMean 1 ── * Charge
//	Hires        Mechanic, ContractType, ProfessionalGroup 1 ── * Contract
//	Accrues      Contract          1 ── * Payroll

// LinkOwns makes client the owner of vehicle, releasing any previous owner.
func LinkOwns(client *Client, vehicle *Vehicle) error {
	if err := errors.Join(guard.NotNil(client, "client"), guard.NotNil(vehicle, "vehicle")); err != nil {
		return err
	}
	if vehicle.client != nil && vehicle.client != client {
		UnlinkOwns(vehicle.client, vehicle)
	}
	vehicle.client = client
	client.vehicles.Add(vehicle)
	return nil
}

// UnlinkOwns releases vehicle from client.
func UnlinkOwns(client *Client, vehicle *Vehicle) {
	if client == nil || vehicle == nil {
		return
	}
	client.vehicles.Remove(vehicle)
	if vehicle.client == client {
		vehicle.client = nil
	}
}

// LinkClassifies sets the vehicle type of vehicle, replacing any previous one.
func LinkClassifies(vehicleType *VehicleType, vehicle *Vehicle) error {
	if err := errors.Join(guard.NotNil(vehicleType, "vehicle type"), guard.NotNil(vehicle, "vehicle")); err != nil {
		return err
	}
	if vehicle.vehicleType != nil && vehicle.vehicleType != vehicleType {
		UnlinkClassifies(vehicle.vehicleType, vehicle)
	}
	vehicle.vehicleType = vehicleType
	vehicleType.vehicles.Add(vehicle)
	return nil
}

// UnlinkClassifies clears the vehicle type of vehicle.
func UnlinkClassifies(vehicleType *VehicleType, vehicle *Vehicle) {
	if vehicleType == nil || vehicle == nil {
		return
	}
	vehicleType.vehicles.Remove(vehicle)
	if vehicle.vehicleType == vehicleType {
		vehicle.vehicleType = nil
	}
}

// LinkHolds hands paymentMean to client, releasing any previous holder.
func LinkHolds(client *Client, paymentMean PaymentMean) error {
	if err := errors.Join(guard.NotNil(client, "client"), requirePaymentMean(paymentMean)); err != nil {
		return err
	}
	pm := paymentMean.common()
	if pm.client != nil && pm.client != client {
		UnlinkHolds(pm.client, paymentMean)
	}
	pm.client = client
	client.paymentMeans.Add(paymentMean)
	return nil
}

// UnlinkHolds releases paymentMean from client.
func UnlinkHolds(client *Client, paymentMean PaymentMean) {
	if client == nil || paymentMean == nil {
		return
	}
	client.paymentMeans.Remove(paymentMean)
	if pm := paymentMean.common(); pm.client == client {
		pm.client = nil
	}
}

// UnlinkIntervenes detaches intervention from its work order and mechanic.
// The work order must still accept ledger changes.
func UnlinkIntervenes(intervention *Intervention) error {
	if intervention == nil || intervention.workOrder == nil {
		return nil
	}
	workOrder := intervention.workOrder
	if !workOrder.status.AcceptsLedgerChanges() {
		return errs.NewStateConflictError("work order", workOrder.status.String(), "remove an intervention from")
	}
	workOrder.interventions.Remove(intervention)
	if intervention.mechanic != nil {
		intervention.mechanic.interventions.Remove(intervention)
	}
	intervention.workOrder = nil
	intervention.mechanic = nil
	return nil
}

// UnlinkSubstitutes detaches substitution from its intervention and spare
// part. When the intervention still belongs to a work order, that work order
// must accept ledger changes.
func UnlinkSubstitutes(substitution *Substitution) error {
	if substitution == nil || (substitution.intervention == nil && substitution.sparePart == nil) {
		return nil
	}
	if intervention := substitution.intervention; intervention != nil && intervention.workOrder != nil {
		if status := intervention.workOrder.status; !status.AcceptsLedgerChanges() {
			return errs.NewStateConflictError("work order", status.String(), "remove a substitution from")
		}
	}
	if substitution.intervention != nil {
		substitution.intervention.substitutions.Remove(substitution)
	}
	if substitution.sparePart != nil {
		substitution.sparePart.substitutions.Remove(substitution)
	}
	substitution.intervention = nil
	substitution.sparePart = nil
	return nil
}

// UnlinkSettles detaches charge from its invoice and payment mean and returns
// the charged amount to the payment mean. The invoice must not be paid yet.
func UnlinkSettles(charge *Charge) error {
	if charge == nil || (charge.invoice == nil && charge.paymentMean == nil) {
		return nil
	}
	if charge.invoice != nil {
		if err := charge.invoice.status.ValidateChange("remove a charge from"); err != nil {
			return err
		}
		charge.invoice.charges.Remove(charge)
	}
	if charge.paymentMean != nil {
		charge.paymentMean.common().charges.Remove(charge)
		charge.paymentMean.refund(charge.amount)
	}
	charge.invoice = nil
	charge.paymentMean = nil
	return nil
}

// UnlinkAccrues drops payroll from its contract's history, for callers that
// failed to persist a payroll they just generated.
func UnlinkAccrues(payroll *Payroll) {
	if payroll == nil || payroll.contract == nil {
		return
	}
	payroll.contract.payrolls.Remove(payroll)
	payroll.contract = nil
}

func linkFixes(vehicle *Vehicle, workOrder *WorkOrder) {
	workOrder.vehicle = vehicle
	vehicle.workOrders.Add(workOrder)
}

func linkAssigns(mechanic *Mechanic, workOrder *WorkOrder) {
	workOrder.mechanic = mechanic
	mechanic.assigned.Add(workOrder)
}

func unlinkAssigns(workOrder *WorkOrder) {
	if workOrder.mechanic == nil {
		return
	}
	workOrder.mechanic.assigned.Remove(workOrder)
	workOrder.mechanic = nil
}

func linkBills(invoice *Invoice, workOrder *WorkOrder) {
	workOrder.invoice = invoice
	invoice.workOrders.Add(workOrder)
}

func unlinkBills(invoice *Invoice, workOrder *WorkOrder) {
	invoice.workOrders.Remove(workOrder)
	if workOrder.invoice == invoice {
		workOrder.invoice = nil
	}
}

func linkIntervenes(workOrder *WorkOrder, intervention *Intervention, mechanic *Mechanic) {
	intervention.workOrder = workOrder
	intervention.mechanic = mechanic
	workOrder.interventions.Add(intervention)
	mechanic.interventions.Add(intervention)
}

func linkSubstitutes(sparePart *SparePart, substitution *Substitution, intervention *Intervention) {
	substitution.sparePart = sparePart
	substitution.intervention = intervention
	sparePart.substitutions.Add(substitution)
	intervention.substitutions.Add(substitution)
}

func linkSettles(invoice *Invoice, charge *Charge, paymentMean PaymentMean) {
	charge.invoice = invoice
	charge.paymentMean = paymentMean
	invoice.charges.Add(charge)
	paymentMean.common().charges.Add(charge)
}

func linkHires(mechanic *Mechanic, contract *Contract, contractType *ContractType, group *ProfessionalGroup) {
	contract.mechanic = mechanic
	contract.contractType = contractType
	contract.professionalGroup = group
	mechanic.contracts.Add(contract)
	contractType.contracts.Add(contract)
	group.contracts.Add(contract)
}

func linkAccrues(contract *Contract, payroll *Payroll) {
	payroll.contract = contract
	contract.payrolls.Add(payroll)
}

// requirePaymentMean also rejects a typed nil such as (*Voucher)(nil).
func requirePaymentMean(paymentMean PaymentMean) error {
	return guard.NotNilInterface(paymentMean, "payment mean")
}
