package domain

import "testing"

func TestSelection_CompleteInEitherOrder(t *testing.T) {
	var colorFirst Selection
	colorFirst.SetColor("black")
	if colorFirst.IsComplete() {
		t.Fatal("color alone must not be complete")
	}
	colorFirst.SetSize("M")
	if !colorFirst.IsComplete() {
		t.Fatal("color then size must be complete")
	}

	var sizeFirst Selection
	sizeFirst.SetSize("M")
	if sizeFirst.IsComplete() {
		t.Fatal("size alone must not be complete")
	}
	sizeFirst.SetColor("black")
	if !sizeFirst.IsComplete() {
		t.Fatal("size then color must be complete")
	}
}

func TestSelection_EmptyValueLeavesIncomplete(t *testing.T) {
	var selection Selection
	selection.SetColor("black")
	selection.SetSize("")
	if selection.IsComplete() {
		t.Fatal("empty size must not complete the selection")
	}
}

func TestSelection_Reset(t *testing.T) {
	var selection Selection
	selection.SetColor("black")
	selection.SetSize("M")
	selection.Reset()

	if selection.IsComplete() {
		t.Fatal("reset selection must be incomplete")
	}
	if selection.Color() != "" || selection.Size() != "" {
		t.Fatalf("reset must clear both fields, got %q/%q", selection.Color(), selection.Size())
	}
}

func TestSelection_OverwriteKeepsComplete(t *testing.T) {
	var selection Selection
	selection.SetColor("black")
	selection.SetSize("M")
	selection.SetColor("white")

	if !selection.IsComplete() {
		t.Fatal("changing color on a complete pair must stay complete immediately")
	}
	if selection.Color() != "white" {
		t.Fatalf("expected white, got %q", selection.Color())
	}
}
