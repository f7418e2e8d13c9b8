// Package menu implements the channel-agnostic conversational menu: a
// declarative tree of prompts and transitions, a tokenizer for each
// channel's raw payload, and a stateless dispatcher that re-walks the
// caller's full input history on every request.
package menu

import "fmt"

type NodeID string

// ActionID names a terminal action a menu leaf resolves to. Handlers are
// registered against these ids in the actions package.
type ActionID string

const (
	ActionEndSession    ActionID = "session.end"
	ActionBookVoice     ActionID = "consultation.voice"
	ActionBookText      ActionID = "consultation.text"
	ActionEmergency     ActionID = "emergency.trigger"
	ActionEmergencyCall ActionID = "emergency.call"
	ActionLocationSMS   ActionID = "emergency.location_sms"
	ActionMaternal      ActionID = "emergency.maternal"
	ActionEducation     ActionID = "education.topic"
	ActionStatus        ActionID = "account.status"
	ActionProfile       ActionID = "account.profile"
	ActionRecent        ActionID = "account.recent"
	ActionSetLanguage   ActionID = "account.set_language"
	ActionHelp          ActionID = "help"
	ActionAssistant     ActionID = "assistant"
)

// Reserved tokens. "0" always ends the session, "9" always returns to
// the parent menu; nodes may not bind either.
const (
	TokenExit = "0"
	TokenBack = "9"
)

// TokenFreeText is the synthetic token the SMS/WhatsApp tokenizer emits
// for messages that match no keyword. The raw message follows it as a
// handler argument.
const TokenFreeText = "#text"

// ActionRef points a transition at a terminal action, optionally binding
// arguments (the education leaves bind their topic here).
type ActionRef struct {
	ID   ActionID
	Args []string
}

// Transition maps an input token to either a child node or an action.
// Exactly one of Node and Action is set.
type Transition struct {
	Token  string
	Node   NodeID
	Action *ActionRef
}

type Node struct {
	ID          NodeID
	Prompt      string
	Transitions []Transition
}

func (n *Node) lookup(token string) (*Transition, bool) {
	for i := range n.Transitions {
		if n.Transitions[i].Token == token {
			return &n.Transitions[i], true
		}
	}
	return nil, false
}

// Tree is the validated, immutable menu structure shared by all channels.
type Tree struct {
	root    NodeID
	nodes   map[NodeID]*Node
	parents map[NodeID]NodeID
}

// New validates the node set and builds the tree. Validation fails on
// unresolvable actions, dangling child ids, duplicate tokens within a
// node, nodes binding a reserved token, and children reachable from more
// than one parent (which would make "back" ambiguous).
func New(root NodeID, nodes []*Node, actionKnown func(ActionID) bool) (*Tree, error) {
	t := &Tree{
		root:    root,
		nodes:   make(map[NodeID]*Node, len(nodes)),
		parents: make(map[NodeID]NodeID),
	}

	for _, n := range nodes {
		if _, dup := t.nodes[n.ID]; dup {
			return nil, fmt.Errorf("menu: duplicate node %q", n.ID)
		}
		t.nodes[n.ID] = n
	}
	if _, ok := t.nodes[root]; !ok {
		return nil, fmt.Errorf("menu: root node %q not defined", root)
	}

	for _, n := range nodes {
		seen := make(map[string]bool, len(n.Transitions))
		for i := range n.Transitions {
			tr := &n.Transitions[i]
			if tr.Token == "" {
				return nil, fmt.Errorf("menu: node %q has an empty transition token", n.ID)
			}
			if tr.Token == TokenExit || tr.Token == TokenBack {
				return nil, fmt.Errorf("menu: node %q binds reserved token %q", n.ID, tr.Token)
			}
			if seen[tr.Token] {
				return nil, fmt.Errorf("menu: node %q has duplicate token %q", n.ID, tr.Token)
			}
			seen[tr.Token] = true

			switch {
			case tr.Node != "" && tr.Action != nil:
				return nil, fmt.Errorf("menu: node %q token %q maps to both a node and an action", n.ID, tr.Token)
			case tr.Node != "":
				if _, ok := t.nodes[tr.Node]; !ok {
					return nil, fmt.Errorf("menu: node %q token %q references unknown node %q", n.ID, tr.Token, tr.Node)
				}
				if tr.Node == root {
					// The root may be re-entered (menu keywords), but it
					// never gains a parent.
					continue
				}
				if parent, ok := t.parents[tr.Node]; ok && parent != n.ID {
					return nil, fmt.Errorf("menu: node %q has two parents (%q and %q)", tr.Node, parent, n.ID)
				}
				t.parents[tr.Node] = n.ID
			case tr.Action != nil:
				if actionKnown != nil && !actionKnown(tr.Action.ID) {
					return nil, fmt.Errorf("menu: node %q token %q references unknown action %q", n.ID, tr.Token, tr.Action.ID)
				}
			default:
				return nil, fmt.Errorf("menu: node %q token %q has no target", n.ID, tr.Token)
			}
		}
	}

	return t, nil
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.nodes[t.root]
}

// Node returns a node by id.
func (t *Tree) Node(id NodeID) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}
