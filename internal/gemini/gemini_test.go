package gemini

import "testing"

func TestGenerateConfigMapping(t *testing.T) {
	conf := Default
	conf.Temperature = 0.33
	conf.TopP = 0.44
	conf.TopK = 12
	conf.MaxOutputTokens = 512

	got := generateConfig(conf)
	if got.Temperature == nil || *got.Temperature != float32(conf.Temperature) {
		t.Errorf("temperature not mapped, got %#v want %v", got.Temperature, conf.Temperature)
	}
	if got.TopP == nil || *got.TopP != float32(conf.TopP) {
		t.Errorf("top_p not mapped, got %#v want %v", got.TopP, conf.TopP)
	}
	if got.TopK == nil || *got.TopK != float32(conf.TopK) {
		t.Errorf("top_k not mapped, got %#v want %v", got.TopK, conf.TopK)
	}
	if got.MaxOutputTokens != conf.MaxOutputTokens {
		t.Errorf("max output tokens not mapped, got %v want %v", got.MaxOutputTokens, conf.MaxOutputTokens)
	}
	if len(got.SafetySettings) != 4 {
		t.Fatalf("expected 4 safety settings, got %v", len(got.SafetySettings))
	}
	for _, ss := range got.SafetySettings {
		if ss.Threshold != "BLOCK_NONE" {
			t.Errorf("safety category %v: threshold %v, want BLOCK_NONE", ss.Category, ss.Threshold)
		}
	}
}

func TestDefaultIsAReasonableStartingPoint(t *testing.T) {
	if Default.Model == "" {
		t.Error("default model identifier is empty")
	}
	if Default.Temperature <= 0 || Default.Temperature > 2 {
		t.Errorf("default temperature %v out of range", Default.Temperature)
	}
	if Default.MaxOutputTokens <= 0 {
		t.Errorf("default max output tokens %v must be positive", Default.MaxOutputTokens)
	}
}
