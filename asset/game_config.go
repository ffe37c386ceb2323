package asset

// DefaultGameConfig mirrors the built-in tuning and documents every key
const DefaultGameConfig = `
# World random seed; identical seeds and inputs replay identically
seed = 24301

[playfield]
width = 700.0
height = 600.0

[player]
base_speed = 300.0
shoot_cooldown = 0.25
rapid_fire_factor = 0.8
starting_lives = 3
max_lives = 5

[projectile]
player_speed = 400.0
rapid_fire_speed = 600.0
enemy_speed = 300.0
multi_shot_spread = 200.0

[enemy]
speed = 150.0
spawn_interval = 1.0
spawn_step = 0.1
spawn_levels_per_step = 5
spawn_floor = 0.5
shoot_interval = 1.6666666666666667
fire_odds = 3
refire_delay = 0.5
# true scales shoot_interval by the tick's elapsed time (frame-rate dependent)
legacy_shoot_timing = false

[scoring]
points_per_kill = 100
points_per_level = 1000

[powerup]
drop_chance = 30
fall_speed = 120.0
pickup_margin = 20.0
rapid_fire_duration = 10.0
multi_shot_duration = 5.0
damage_increment = 0.5
speed_increment = 0.1
max_speed_multiplier = 2.0

[effect]
explosion_life = 0.3
notification_life = 2.0
`
