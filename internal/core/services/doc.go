// Package services implements the core pipe-flow computations behind
// the driving ports: flow kinematics, friction factor resolution, head
// loss and pressure drop, the analysis orchestrator, the Moody sweep,
// and the property and history services.
//
// Everything here is purely computational and synchronous. No state is
// shared between calls, so analyses may run concurrently without
// coordination.
package services
