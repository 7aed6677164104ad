// Package sim is the narrow surface of the physics engine that the
// structure pipeline consumes: a 3D vector type, rigid rod and spring-cable
// instances, and a world that holds realized objects and forwards time
// steps to them. Force and constraint solving is owned by the engine proper
// and is out of scope here.
package sim
