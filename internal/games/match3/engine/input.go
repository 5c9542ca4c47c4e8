package engine

// HandleCellClick applies one click on the board:
//
//  1. a bomb detonates;
//  2. a rocket detonates;
//  3. clicking the selected cell deselects it;
//  4. with nothing selected, the cell becomes selected;
//  5. otherwise an adjacent cell is swapped with the selection, which costs
//     a move and resolves matches. A non-adjacent cell leaves the selection
//     in place.
//
// Special tiles fire without touching the selection.
func (e *Engine) HandleCellClick(a Addr) (Update, error) {
	if !e.grid.InBounds(a) {
		return e.reject(ErrOutOfBounds)
	}
	if !e.session.Playing() {
		return e.reject(ErrNotPlaying)
	}

	cell := e.grid.Get(a)
	switch {
	case cell.IsBomb():
		return e.detonate(DetonateBomb(e.grid, a)), nil
	case cell.IsRocket():
		return e.detonate(DetonateRocket(e.grid, a, cell.Special.Orientation())), nil
	}

	up := Update{}
	switch {
	case e.hasSelected && e.selected == a:
		e.clearSelection()
		up.Events = append(up.Events, Event{Kind: EventDeselected, Addrs: []Addr{a}})

	case !e.hasSelected:
		e.selected = a
		e.hasSelected = true
		up.Events = append(up.Events, Event{Kind: EventSelected, Addrs: []Addr{a}})

	case !e.selected.Adjacent(a):
		up.Events = append(up.Events, Event{Kind: EventSwapRejected, Addrs: []Addr{e.selected, a}})

	default:
		e.swap(&up, e.selected, a)
	}

	e.finish(&up)
	return up, nil
}

// TriggerSpecial detonates the special tile at a.
func (e *Engine) TriggerSpecial(a Addr) (Update, error) {
	if !e.grid.InBounds(a) {
		return e.reject(ErrOutOfBounds)
	}
	if !e.session.Playing() {
		return e.reject(ErrNotPlaying)
	}
	cell := e.grid.Get(a)
	switch {
	case cell.IsBomb():
		return e.detonate(DetonateBomb(e.grid, a)), nil
	case cell.IsRocket():
		return e.detonate(DetonateRocket(e.grid, a, cell.Special.Orientation())), nil
	default:
		return e.reject(ErrNotSpecial)
	}
}

// swap exchanges the selection with an adjacent target and resolves matches.
// The swap stands even when it produces no run.
func (e *Engine) swap(up *Update, from, to Addr) {
	e.grid.Swap(from, to)
	e.session.RecordMove()
	e.clearSelection()
	up.Events = append(up.Events, Event{Kind: EventSwapped, Addrs: []Addr{from, to}})

	scan := Scan(e.grid, e.src)
	if scan.Matched {
		e.credit(up, scan.Score, scan.Stars)
		appendRunEvents(up, scan.Runs, scan.Specials)
		e.cascade(up)
	}
	e.session.Evaluate()
}

// detonate credits a bomb or rocket blast and refills the board.
func (e *Engine) detonate(det Detonation) Update {
	up := Update{}
	e.credit(&up, det.Score, 0)
	up.Events = append(up.Events, Event{
		Kind:    EventDetonated,
		Addrs:   det.Cleared,
		Special: det.Special,
		Score:   det.Score,
	})

	e.cascade(&up)
	e.session.Evaluate()
	e.finish(&up)
	return up
}

func (e *Engine) clearSelection() {
	e.selected = Addr{}
	e.hasSelected = false
}
