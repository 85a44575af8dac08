package network

import (
	"context"
	"log"

	"github.com/ezrec/intcode/cpu"
)

const (
	NAT_ADDRESS    = 255     // Default address diverted to the NAT.
	IDLE_THRESHOLD = 2       // Default idle sweeps before the NAT intervenes.
	MAX_SWEEPS     = 1000000 // Default sweep limit.
	NO_PACKET      = -1      // Input supplied to a node polling an empty queue.
)

// Packet is a message between nodes.
type Packet struct {
	Dst int64
	X   int64
	Y   int64
}

// NatResult is the outcome of a network run.
type NatResult struct {
	First    Packet // First packet received by the NAT.
	Repeated Packet // First NAT packet delivered to node 0 a second time.
}

// Network is a set of Intcode machines exchanging packets.
//
// Each node is given its address as its first input. Nodes emit packets as
// three outputs (destination, x, y). Packets addressed to NatAddress are
// held by the NAT, which keeps only the most recent one. Once the network
// has been idle for IdleThreshold consecutive sweeps, the NAT delivers its
// packet to node 0.
type Network struct {
	Verbose bool // Set to enable verbose logging.

	Nodes         []*cpu.Machine
	NatAddress    int64
	IdleThreshold int
	MaxSweeps     int

	Sweeps int // Completed sweeps.

	partial [][]int64 // Outputs of each node not yet forming a packet.
}

// NewNetwork creates a network of size nodes, each running a copy of program.
func NewNetwork(program []int64, size int) (nw *Network) {
	nw = &Network{
		Nodes:         make([]*cpu.Machine, size),
		NatAddress:    NAT_ADDRESS,
		IdleThreshold: IDLE_THRESHOLD,
		MaxSweeps:     MAX_SWEEPS,
	}

	for n := range nw.Nodes {
		nw.Nodes[n] = cpu.NewMachine(program, cpu.DIALECT_RELATIVE)
		nw.Nodes[n].RegisterInput(int64(n))
	}

	return
}

// sweep runs every live node until it blocks or halts, routing its packets.
// Returns the number of packets sent, and any packets for the NAT.
func (nw *Network) sweep() (sent int, nat []Packet, err error) {
	for n, node := range nw.Nodes {
		if node.Halted() {
			continue
		}

		if node.Pending() == 0 {
			node.RegisterInput(NO_PACKET)
		}

		var outputs []int64
		outputs, err = node.Run()
		if err != nil {
			err = &ErrNode{Node: n, Err: err}
			return
		}

		nw.partial[n] = append(nw.partial[n], outputs...)
		for len(nw.partial[n]) >= 3 {
			pkt := Packet{Dst: nw.partial[n][0], X: nw.partial[n][1], Y: nw.partial[n][2]}
			nw.partial[n] = nw.partial[n][3:]
			sent++

			if nw.Verbose {
				log.Printf("network: %d -> %d (%d, %d)", n, pkt.Dst, pkt.X, pkt.Y)
			}

			switch {
			case pkt.Dst == nw.NatAddress:
				nat = append(nat, pkt)
			case pkt.Dst >= 0 && pkt.Dst < int64(len(nw.Nodes)):
				nw.Nodes[pkt.Dst].RegisterInput(pkt.X, pkt.Y)
			default:
				err = &ErrNode{Node: n, Err: ErrAddressUnknown}
				return
			}
		}
	}

	return
}

// idle returns true if no node has queued input, a partial packet, or can
// make progress without input.
func (nw *Network) idle() bool {
	for n, node := range nw.Nodes {
		if node.Halted() {
			continue
		}
		if node.Pending() != 0 || len(nw.partial[n]) != 0 || node.Reason() != cpu.REASON_BLOCKED {
			return false
		}
	}
	return true
}

func (nw *Network) halted() bool {
	for _, node := range nw.Nodes {
		if !node.Halted() {
			return false
		}
	}
	return true
}

// Run operates the network until the NAT delivers the same packet to
// node 0 twice.
func (nw *Network) Run(ctx context.Context) (result NatResult, err error) {
	nw.partial = make([][]int64, len(nw.Nodes))

	var held Packet
	holding := false
	received := false
	delivered := map[Packet]bool{}

	idleSweeps := 0
	for nw.Sweeps = 0; nw.MaxSweeps <= 0 || nw.Sweeps < nw.MaxSweeps; nw.Sweeps++ {
		err = ctx.Err()
		if err != nil {
			return
		}

		var sent int
		var nat []Packet
		sent, nat, err = nw.sweep()
		if err != nil {
			return
		}

		for _, pkt := range nat {
			if !received {
				result.First = pkt
				received = true
			}
			held = pkt
			holding = true
		}

		if nw.halted() {
			err = ErrNetworkHalted
			return
		}

		if sent == 0 && nw.idle() {
			idleSweeps++
		} else {
			idleSweeps = 0
		}

		if !holding || idleSweeps < nw.IdleThreshold {
			continue
		}

		pkt := Packet{Dst: 0, X: held.X, Y: held.Y}
		if nw.Verbose {
			log.Printf("network: idle, nat -> 0 (%d, %d)", pkt.X, pkt.Y)
		}
		if delivered[pkt] {
			result.Repeated = pkt
			return
		}
		delivered[pkt] = true

		nw.Nodes[0].RegisterInput(pkt.X, pkt.Y)
		idleSweeps = 0
	}

	err = ErrNetworkStalled
	return
}
