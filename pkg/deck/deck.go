/*
   CasDeck - MSX cassette tape workbench
   Copyright (c) 2022, Alexander Vollschwitz

   This file is part of CasDeck.

   CasDeck is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   CasDeck is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with CasDeck. If not, see <http://www.gnu.org/licenses/>.
*/

package deck

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/casdeck/pkg/cassette/tape"
)

//
const SlotCount = 4

//
const lockTimeout = 3 * time.Second

// a deck with a fixed number of slots, each of which can hold one tape
type Deck struct {
	slots []*Slot
}

//
func NewDeck() *Deck {

	d := &Deck{slots: make([]*Slot, SlotCount)}

	for ix := range d.slots {
		d.slots[ix] = &Slot{
			number: ix + 1,
			lock:   make(chan bool, 1),
		}
	}

	return d
}

// GetSlot gets the slot at ix (1-based), locked for exclusive use. The
// caller needs to unlock the slot when done with it.
func (d *Deck) GetSlot(ix int) (*Slot, error) {

	if ix < 1 || len(d.slots) < ix {
		return nil, fmt.Errorf("invalid slot number: %d", ix)
	}

	s := d.slots[ix-1]

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if !s.Lock(ctx) {
		return nil, fmt.Errorf("could not lock slot %d", ix)
	}

	return s, nil
}

// Load puts tape t into slot ix. When the slot currently holds a modified
// tape, it is only replaced when force is set.
func (d *Deck) Load(ix int, t *tape.Tape, force bool) error {

	s, err := d.GetSlot(ix)
	if err != nil {
		return err
	}
	defer s.Unlock()

	if present := s.Tape(); present != nil && present.IsModified() && !force {
		return fmt.Errorf("tape in slot %d is modified", ix)
	}

	s.insert(t)
	log.WithFields(log.Fields{"slot": ix, "tape": s.Name()}).Info("tape loaded")

	return nil
}

// Unload ejects the tape from slot ix, leaving the slot empty. A modified
// tape is only ejected when force is set.
func (d *Deck) Unload(ix int, force bool) error {

	s, err := d.GetSlot(ix)
	if err != nil {
		return err
	}
	defer s.Unlock()

	if t := s.Tape(); t != nil && t.IsModified() && !force {
		return fmt.Errorf("tape in slot %d is modified", ix)
	}

	s.insert(nil)
	log.WithField("slot", ix).Info("tape unloaded")

	return nil
}

// Slot couples a tape with the lock that guards it. The lock belongs to
// the slot rather than the tape, so an empty slot locks just the same.
type Slot struct {
	//
	number int
	tape   *tape.Tape
	//
	lock chan bool
}

//
func (s *Slot) Lock(ctx context.Context) bool {
	select {
	case s.lock <- true:
		log.WithField("slot", s.number).Debug("slot locked")
		return true
	case <-ctx.Done():
		log.WithField("slot", s.number).Debug("slot lock timed out")
		return false
	}
}

//
func (s *Slot) Unlock() {
	select {
	case <-s.lock:
		log.WithField("slot", s.number).Debug("slot unlocked")
	default:
		log.WithField("slot", s.number).Debug("slot was already unlocked")
	}
}

//
func (s *Slot) IsLocked() bool {
	return len(s.lock) > 0
}

//
func (s *Slot) Number() int {
	return s.number
}

// Tape is the tape currently in the slot, nil when the slot is empty.
// Callers only get at a slot through Deck.GetSlot, i.e. with the slot
// locked, so the tape cannot be swapped while they hold it.
func (s *Slot) Tape() *tape.Tape {
	return s.tape
}

//
func (s *Slot) IsEmpty() bool {
	return s.tape == nil
}

//
func (s *Slot) Name() string {
	if s.tape != nil {
		return s.tape.Name()
	}
	return ""
}

//
func (s *Slot) insert(t *tape.Tape) {
	s.tape = t
}
