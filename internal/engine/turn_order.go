package engine

// VetoOrder is the fixed ban/pick sequence. Slots alternate per action type.
var VetoOrder = []Step{
	// Ban Phase 1
	{Action: ActionBan, Slot: SlotFirst},
	{Action: ActionBan, Slot: SlotSecond},
	// Pick Phase
	{Action: ActionPick, Slot: SlotFirst},
	{Action: ActionPick, Slot: SlotSecond},
	// Ban Phase 2
	{Action: ActionBan, Slot: SlotFirst},
	{Action: ActionBan, Slot: SlotSecond},
	// Decider
	{Action: ActionPick, Slot: SlotFirst},
}

// SideSteps is how many picked maps get a side chosen. The decider's side
// is settled by the score of the first two maps.
const SideSteps = 2
