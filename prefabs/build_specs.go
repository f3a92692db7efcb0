package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type CapsuleComponentSpec struct {
	Radius     float64 `yaml:"radius"`
	HalfHeight float64 `yaml:"half_height"`
}

type MovementComponentSpec struct {
	MaxWalkSpeed     float64 `yaml:"max_walk_speed"`
	JumpZVelocity    float64 `yaml:"jump_z_velocity"`
	AirControl       float64 `yaml:"air_control"`
	RotationRate     float64 `yaml:"rotation_rate"`
	OrientToMovement *bool   `yaml:"orient_to_movement"`
	Gravity          float64 `yaml:"gravity"`
}

type ControllerComponentSpec struct {
	BaseTurnRate float64 `yaml:"base_turn_rate"`
}

type StaminaComponentSpec struct {
	Initial     float64 `yaml:"initial"`
	DrainRate   float64 `yaml:"drain_rate"`
	RegenRate   float64 `yaml:"regen_rate"`
	SpeedFactor float64 `yaml:"speed_factor"`
	Pacing      string  `yaml:"pacing"`
}

type CollectorComponentSpec struct {
	Radius float64 `yaml:"radius"`
}

type PhysicsBodyComponentSpec struct {
	Radius     float64 `yaml:"radius"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Static     bool    `yaml:"static"`
}

type CameraComponentSpec struct {
	TargetName      string  `yaml:"target_name"`
	TargetArmLength float64 `yaml:"target_arm_length"`
	ReferenceArm    float64 `yaml:"reference_arm"`
	Lag             float64 `yaml:"lag"`
	UsePawnYaw      bool    `yaml:"use_pawn_yaw"`
}

type PickupComponentSpec struct {
	Type   string  `yaml:"type"`
	Power  float64 `yaml:"power"`
	Radius float64 `yaml:"radius"`
	Script string  `yaml:"script"`
}
