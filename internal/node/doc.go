// Package node defines the node capability contract shared between the
// catalog builder and the node libraries it describes. A node library
// declares one Definition per class and registers it with the registry;
// the analyzer never needs the executable side of a node, only its declared
// structure.
package node
