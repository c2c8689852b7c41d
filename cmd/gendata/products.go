// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package main

// template is one catalog entry with its price band in dollars.
type template struct {
	Name     string
	Brand    string
	MinPrice float64
	MaxPrice float64
}

// category groups templates; order is fixed so seeded runs are reproducible.
type category struct {
	Name     string
	Products []template
}

var categories = []category{
	{"Electronics", []template{
		{"Wireless Headphones", "TechSound", 50, 150},
		{"Bluetooth Speaker", "AudioPro", 30, 100},
		{"Smart Watch", "TechTime", 150, 400},
		{"Laptop Stand", "DeskPro", 25, 60},
		{"Wireless Mouse", "ClickTech", 15, 50},
		{"USB-C Hub", "ConnectPlus", 20, 80},
		{"Portable Charger", "PowerBank", 25, 70},
		{"Webcam HD", "VisionCam", 40, 120},
		{"Mechanical Keyboard", "KeyMaster", 60, 180},
		{"Noise Cancelling Earbuds", "SoundWave", 80, 200},
	}},
	{"Home Appliances", []template{
		{"Coffee Maker", "BrewMaster", 40, 120},
		{"Blender", "BlendPro", 30, 90},
		{"Air Fryer", "CrispyCook", 60, 150},
		{"Vacuum Cleaner", "CleanHome", 80, 250},
		{"Toaster Oven", "QuickBake", 50, 130},
		{"Electric Kettle", "BoilFast", 20, 60},
		{"Food Processor", "ChopMaster", 70, 180},
		{"Rice Cooker", "PerfectRice", 35, 100},
		{"Microwave Oven", "QuickHeat", 80, 200},
		{"Stand Mixer", "BakePro", 150, 400},
	}},
	{"Sports & Fitness", []template{
		{"Yoga Mat", "FitLife", 20, 50},
		{"Running Shoes", "SportFit", 60, 150},
		{"Dumbbells Set", "IronFit", 40, 120},
		{"Resistance Bands", "FlexFit", 15, 40},
		{"Jump Rope", "CardioMax", 10, 30},
		{"Foam Roller", "RecoverPro", 20, 50},
		{"Gym Bag", "CarryFit", 25, 70},
		{"Water Bottle", "HydratePlus", 15, 40},
		{"Tennis Racket", "CourtMaster", 50, 200},
		{"Bicycle Helmet", "SafeRide", 30, 100},
	}},
	{"Kitchen & Dining", []template{
		{"Stainless Steel Pan", "CookPro", 30, 100},
		{"Knife Set", "SharpEdge", 40, 150},
		{"Cutting Board", "ChopWell", 15, 50},
		{"Mixing Bowls Set", "MixMaster", 20, 60},
		{"Glass Storage Containers", "FreshKeep", 25, 70},
		{"Utensil Set", "ServeRight", 20, 60},
		{"Dinner Plates Set", "DineWell", 40, 120},
		{"Wine Glasses", "CrystalClear", 30, 90},
		{"Spice Rack", "FlavorOrganize", 25, 70},
		{"Coffee Grinder", "BeanCrush", 35, 100},
	}},
	{"Personal Care", []template{
		{"Electric Toothbrush", "SmileBright", 30, 120},
		{"Hair Dryer", "QuickDry", 25, 80},
		{"Massage Gun", "RelaxPro", 80, 200},
		{"Facial Steamer", "GlowSkin", 30, 90},
		{"Electric Shaver", "SmoothShave", 40, 150},
		{"Body Scale", "WeighRight", 20, 60},
		{"Nail Care Kit", "ManicurePro", 15, 45},
		{"Aromatherapy Diffuser", "CalmScent", 25, 70},
		{"LED Mirror", "ReflectWell", 35, 100},
		{"Heating Pad", "WarmComfort", 20, 60},
	}},
	{"Home & Garden", []template{
		{"Plant Pot Set", "GreenThumb", 20, 60},
		{"Garden Tools Set", "DigPro", 30, 90},
		{"LED String Lights", "GlowHome", 15, 50},
		{"Throw Pillows", "CozyLiving", 20, 60},
		{"Storage Baskets", "OrganizeIt", 25, 70},
		{"Wall Clock", "TimePiece", 20, 80},
		{"Picture Frames Set", "MemoryKeep", 25, 70},
		{"Candle Set", "WarmGlow", 20, 60},
		{"Area Rug", "ComfortFloor", 50, 200},
		{"Curtains", "WindowDress", 30, 100},
	}},
	{"Office Supplies", []template{
		{"Desk Organizer", "NeatDesk", 15, 50},
		{"Ergonomic Chair Cushion", "SitComfort", 25, 70},
		{"Notebook Set", "WriteWell", 10, 30},
		{"Pen Holder", "DeskTidy", 10, 30},
		{"Desk Lamp", "BrightWork", 25, 80},
		{"File Folders", "OrganizePro", 15, 40},
		{"Whiteboard", "WriteErase", 20, 70},
		{"Paper Shredder", "SecureShred", 40, 120},
		{"Stapler Set", "BindTight", 15, 40},
		{"Monitor Stand", "ViewRise", 30, 90},
	}},
	{"Books & Media", []template{
		{"Fiction Novel", "ReadMore", 10, 25},
		{"Cookbook", "TasteGuide", 15, 35},
		{"Self-Help Book", "GrowWise", 12, 30},
		{"Biography", "LifeStory", 15, 35},
		{"Art Book", "CreativeView", 25, 60},
		{"Travel Guide", "ExploreWorld", 15, 40},
		{"Children's Book", "KidRead", 8, 20},
		{"Photography Book", "CaptureMoments", 30, 80},
		{"Science Book", "KnowMore", 20, 50},
		{"History Book", "PastLessons", 18, 45},
	}},
}
