// Package missionorder implements the MissionOrder aggregate: the approval
// state machine of a travel request, its sequential validator levels and the
// write-once signature artifact sealing the final approval.
//
// The aggregate enforces the workflow contract:
//
//   - Draft orders are editable only by their requester.
//   - Submit moves Draft to Submitted exactly once; a second submit fails.
//   - Team-lead and finance approvals record their validator without changing
//     the status; direction approval moves the order to Approved.
//   - The final approval may seal a Signature artifact; sealing is write-once
//     and a re-sign attempt is a conflict, never an overwrite.
//   - Rejection requires a comment and is terminal.
//   - Approved orders move through InProgress to Completed by external fleet
//     and reporting processes.
//
// State is persisted with an optimistic-concurrency version so that concurrent
// validator decisions on the same order serialize through the record store:
// the second writer loses with a conflict instead of producing a mixed state.
package missionorder
